package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCustomerRepository(db)

	customer := &domain.Customer{
		Type:        domain.CustomerTypeCorporate,
		CompanyName: "Hikari Power",
		ContactName: "Hanako Sato",
		Email:       "hanako@hikari.example.com",
	}
	err := repo.Create(context.Background(), customer)
	require.NoError(t, err)
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", customer.ID.String())

	found, err := repo.GetByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hikari Power", found.CompanyName)
	assert.Equal(t, domain.CustomerTypeCorporate, found.Type)
}

func TestCustomerRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCustomerRepository(db)

	seed := []*domain.Customer{
		{Type: domain.CustomerTypeCorporate, CompanyName: "Zenith Solar", ContactName: "Aki Mori", Email: "aki@zenith.example.com"},
		{Type: domain.CustomerTypeCorporate, CompanyName: "Aurora Denki", ContactName: "Ben Tanaka", Email: "ben@aurora.example.com"},
		{Type: domain.CustomerTypeIndividual, ContactName: "Chie Aoki", Email: "chie@example.com"},
	}
	for _, c := range seed {
		require.NoError(t, repo.Create(context.Background(), c))
	}

	t.Run("search matches company name case-insensitively", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{Search: "aurora"})
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Aurora Denki", customers[0].CompanyName)
	})

	t.Run("search matches contact name and email", func(t *testing.T) {
		byContact, err := repo.List(context.Background(), repository.CustomerFilter{Search: "chie"})
		require.NoError(t, err)
		assert.Len(t, byContact, 1)

		byEmail, err := repo.List(context.Background(), repository.CustomerFilter{Search: "zenith.example"})
		require.NoError(t, err)
		assert.Len(t, byEmail, 1)
	})

	t.Run("sort=company_name orders alphabetically", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{Sort: "company_name"})
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "", customers[0].CompanyName)
		assert.Equal(t, "Aurora Denki", customers[1].CompanyName)
		assert.Equal(t, "Zenith Solar", customers[2].CompanyName)
	})

	t.Run("search alone keeps newest-first order", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{Search: "example.com"})
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "Chie Aoki", customers[0].ContactName)
	})

	t.Run("sort combines with search", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{Search: "example.com", Sort: "company_name"})
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "Zenith Solar", customers[2].CompanyName)
	})

	t.Run("type filter", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{Type: "individual"})
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Chie Aoki", customers[0].ContactName)
	})

	t.Run("no filter returns all", func(t *testing.T) {
		customers, err := repo.List(context.Background(), repository.CustomerFilter{})
		require.NoError(t, err)
		assert.Len(t, customers, 3)
	})
}

func TestCustomerRepository_GetByIDWithProjects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCustomerRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Field Holdings")
	testutil.CreateTestProject(t, db, customer.ID, "Field One")
	testutil.CreateTestProject(t, db, customer.ID, "Field Two")

	found, err := repo.GetByIDWithProjects(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Len(t, found.Projects, 2)
}

func TestCustomerRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCustomerRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Gone Soon")

	require.NoError(t, repo.Delete(context.Background(), customer.ID))

	_, err := repo.GetByID(context.Background(), customer.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
