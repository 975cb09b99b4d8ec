package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func newProjectServiceForTest(t *testing.T) (*ProjectService, *domain.Customer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	customer := testutil.CreateTestCustomer(t, db, "Detail Test KK")

	svc := NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewCustomerRepository(db),
		zap.NewNop(),
	)
	return svc, customer
}

func TestProjectService_Create(t *testing.T) {
	svc, customer := newProjectServiceForTest(t)

	t.Run("with nested satellites", func(t *testing.T) {
		detail, err := svc.Create(context.Background(), &domain.CreateProjectRequest{
			CustomerID:  customer.ID,
			ProjectName: "Nested Plant",
			PowerPlantSpec: &domain.PowerPlantSpecInput{
				PanelKW:    75,
				PanelCount: 250,
			},
			RegulatoryInfo: &domain.RegulatoryInfoInput{
				MetiID: "C99",
			},
		})
		require.NoError(t, err)
		require.NotNil(t, detail.PowerPlantSpec)
		require.NotNil(t, detail.RegulatoryInfo)
		assert.Equal(t, 75.0, detail.PowerPlantSpec.PanelKW)
		assert.Equal(t, "C99", detail.RegulatoryInfo.MetiID)
		assert.Equal(t, domain.ProjectStatusOperating, detail.Status, "status defaults to operating")
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &domain.CreateProjectRequest{
			CustomerID:  uuid.New(),
			ProjectName: "Orphan Plant",
		})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestProjectService_GetDetail_MissingSatellitesAreNull(t *testing.T) {
	svc, customer := newProjectServiceForTest(t)

	created, err := svc.Create(context.Background(), &domain.CreateProjectRequest{
		CustomerID:  customer.ID,
		ProjectName: "Bare Plant",
	})
	require.NoError(t, err)

	detail, err := svc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.PowerPlantSpec)
	assert.Nil(t, detail.RegulatoryInfo)
}

func TestProjectService_Update_UpsertsSatellites(t *testing.T) {
	svc, customer := newProjectServiceForTest(t)

	created, err := svc.Create(context.Background(), &domain.CreateProjectRequest{
		CustomerID:  customer.ID,
		ProjectName: "Growing Plant",
		PowerPlantSpec: &domain.PowerPlantSpecInput{
			PanelKW: 10,
		},
	})
	require.NoError(t, err)

	// First update changes the existing spec and inserts regulatory info
	detail, err := svc.Update(context.Background(), created.ID, &domain.UpdateProjectRequest{
		CustomerID:  customer.ID,
		ProjectName: "Growing Plant",
		PowerPlantSpec: &domain.PowerPlantSpecInput{
			PanelKW: 20,
		},
		RegulatoryInfo: &domain.RegulatoryInfoInput{
			MetiID: "D1",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, detail.PowerPlantSpec)
	assert.Equal(t, 20.0, detail.PowerPlantSpec.PanelKW)
	require.NotNil(t, detail.RegulatoryInfo)
	assert.Equal(t, "D1", detail.RegulatoryInfo.MetiID)

	// Omitting the satellites leaves them untouched
	detail, err = svc.Update(context.Background(), created.ID, &domain.UpdateProjectRequest{
		CustomerID:  customer.ID,
		ProjectName: "Renamed Plant",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Plant", detail.ProjectName)
	require.NotNil(t, detail.PowerPlantSpec)
	assert.Equal(t, 20.0, detail.PowerPlantSpec.PanelKW)
}

func TestProjectService_GetDetail_NotFound(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)

	_, err := svc.GetDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
