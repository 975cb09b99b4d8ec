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

func TestProjectRepository_CreateWithSatellites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Sunrise Energy")

	project := &domain.Project{
		CustomerID:  customer.ID,
		ProjectName: "Sunrise Plant 1",
		Status:      domain.ProjectStatusOperating,
	}
	spec := &domain.PowerPlantSpec{PanelKW: 49.5, PanelCount: 180}
	reg := &domain.RegulatoryInfo{MetiID: "A123456", FitRate: 18}

	err := repo.CreateWithSatellites(context.Background(), project, spec, reg)
	require.NoError(t, err)

	gotSpec, err := repo.GetPlantSpec(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 49.5, gotSpec.PanelKW)
	assert.Equal(t, project.ID, gotSpec.ProjectID)

	gotReg, err := repo.GetRegulatoryInfo(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "A123456", gotReg.MetiID)
}

func TestProjectRepository_CreateWithSatellites_NilSatellites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Sunrise Energy")

	project := &domain.Project{
		CustomerID:  customer.ID,
		ProjectName: "Bare Project",
		Status:      domain.ProjectStatusPlanning,
	}

	err := repo.CreateWithSatellites(context.Background(), project, nil, nil)
	require.NoError(t, err)

	_, err = repo.GetPlantSpec(context.Background(), project.ID)
	assert.Error(t, err)
	_, err = repo.GetRegulatoryInfo(context.Background(), project.ID)
	assert.Error(t, err)
}

func TestProjectRepository_UpdateWithSatellites_UpsertKeepsSingleRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	customer := testutil.CreateTestCustomer(t, db, "Sunrise Energy")

	project := &domain.Project{
		CustomerID:  customer.ID,
		ProjectName: "Upsert Plant",
		Status:      domain.ProjectStatusOperating,
	}
	require.NoError(t, repo.CreateWithSatellites(context.Background(), project,
		&domain.PowerPlantSpec{PanelKW: 10}, nil))

	// Repeated updates with satellite payloads must overwrite, not
	// accumulate rows.
	for i := 0; i < 3; i++ {
		err := repo.UpdateWithSatellites(context.Background(), project,
			&domain.PowerPlantSpec{PanelKW: float64(20 + i)},
			&domain.RegulatoryInfo{MetiID: "B7"},
		)
		require.NoError(t, err)
	}

	var specCount, regCount int64
	require.NoError(t, db.Model(&domain.PowerPlantSpec{}).Where("project_id = ?", project.ID).Count(&specCount).Error)
	require.NoError(t, db.Model(&domain.RegulatoryInfo{}).Where("project_id = ?", project.ID).Count(&regCount).Error)
	assert.Equal(t, int64(1), specCount)
	assert.Equal(t, int64(1), regCount)

	spec, err := repo.GetPlantSpec(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 22.0, spec.PanelKW)
}

func TestProjectRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	customerA := testutil.CreateTestCustomer(t, db, "Alpha Solar")
	customerB := testutil.CreateTestCustomer(t, db, "Beta Solar")

	testutil.CreateTestProject(t, db, customerA.ID, "North Field")
	testutil.CreateTestProject(t, db, customerA.ID, "South Field")
	testutil.CreateTestProject(t, db, customerB.ID, "East Ridge")

	t.Run("by customer", func(t *testing.T) {
		projects, err := repo.List(context.Background(), repository.ProjectFilter{CustomerID: &customerA.ID})
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		projects, err := repo.List(context.Background(), repository.ProjectFilter{Search: "north"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "North Field", projects[0].ProjectName)
	})

	t.Run("customer is preloaded", func(t *testing.T) {
		projects, err := repo.List(context.Background(), repository.ProjectFilter{Search: "east"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		require.NotNil(t, projects[0].Customer)
		assert.Equal(t, "Beta Solar", projects[0].Customer.CompanyName)
	})
}
