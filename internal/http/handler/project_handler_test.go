package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/http/handler"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/service"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func newProjectRouter(t *testing.T) (*chi.Mux, *gorm.DB, *domain.Customer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	customer := testutil.CreateTestCustomer(t, db, "Plant Owner KK")

	projectSvc := service.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewCustomerRepository(db),
		zap.NewNop(),
	)
	maintenanceSvc := service.NewMaintenanceService(
		repository.NewMaintenanceRepository(db),
		repository.NewProjectRepository(db),
		nil,
		zap.NewNop(),
	)
	h := handler.NewProjectHandler(projectSvc, maintenanceSvc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/specs", h.GetSpecs)
	})
	return r, db, customer
}

func TestProjectHandler_GetSpecs(t *testing.T) {
	r, db, customer := newProjectRouter(t)

	t.Run("null when no spec is recorded", func(t *testing.T) {
		project := testutil.CreateTestProject(t, db, customer.ID, "Bare Site")

		req := httptest.NewRequest(http.MethodGet, "/projects/"+project.ID.String()+"/specs", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("returns the spec row", func(t *testing.T) {
		project := testutil.CreateTestProject(t, db, customer.ID, "Equipped Site")
		require.NoError(t, db.Create(&domain.PowerPlantSpec{
			ProjectID:  project.ID,
			PanelKW:    49.5,
			PanelCount: 180,
		}).Error)

		req := httptest.NewRequest(http.MethodGet, "/projects/"+project.ID.String()+"/specs", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.PowerPlantSpecDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 49.5, got.PanelKW)
		assert.Equal(t, 180, got.PanelCount)
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects/"+uuid.NewString()+"/specs", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
