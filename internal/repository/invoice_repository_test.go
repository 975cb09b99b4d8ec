package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func TestInvoiceRepository_ListByContract(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInvoiceRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Meadow Solar")
	project := testutil.CreateTestProject(t, db, customer.ID, "Meadow Plant")
	contract := testutil.CreateTestContract(t, db, project.ID)

	for _, period := range []string{"2026-01", "2026-03", "2026-02"} {
		invoice := &domain.Invoice{
			ContractID:    contract.ID,
			BillingPeriod: period,
			Amount:        10000,
			Status:        domain.InvoiceStatusUnbilled,
		}
		require.NoError(t, repo.Create(context.Background(), invoice))
	}

	invoices, err := repo.ListByContract(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "2026-03", invoices[0].BillingPeriod)
	assert.Equal(t, "2026-02", invoices[1].BillingPeriod)
	assert.Equal(t, "2026-01", invoices[2].BillingPeriod)
}

func TestInvoiceRepository_ListByPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInvoiceRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Meadow Solar")
	project := testutil.CreateTestProject(t, db, customer.ID, "Meadow Plant")
	contract := testutil.CreateTestContract(t, db, project.ID)

	invoices := []*domain.Invoice{
		{ContractID: contract.ID, BillingPeriod: "2026-07", Amount: 10000, Status: domain.InvoiceStatusBilled},
		{ContractID: contract.ID, BillingPeriod: "2026-07", Amount: 20000, Status: domain.InvoiceStatusPaid},
		{ContractID: contract.ID, BillingPeriod: "2026-08", Amount: 30000, Status: domain.InvoiceStatusBilled},
	}
	for _, inv := range invoices {
		require.NoError(t, repo.Create(context.Background(), inv))
	}

	t.Run("period only", func(t *testing.T) {
		got, err := repo.ListByPeriod(context.Background(), "2026-07", "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("period and status", func(t *testing.T) {
		got, err := repo.ListByPeriod(context.Background(), "2026-07", "paid")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 20000.0, got[0].Amount)
	})

	t.Run("contract chain preloaded", func(t *testing.T) {
		got, err := repo.ListByPeriod(context.Background(), "2026-08", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Contract)
		require.NotNil(t, got[0].Contract.Project)
		require.NotNil(t, got[0].Contract.Project.Customer)
		assert.Equal(t, "Meadow Solar", got[0].Contract.Project.Customer.CompanyName)
	})

	t.Run("empty period", func(t *testing.T) {
		got, err := repo.ListByPeriod(context.Background(), "2030-01", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
