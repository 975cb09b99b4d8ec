package handler_test

import (
	"encoding/json"
	"fmt"
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

func newMaintenanceRouter(t *testing.T) (*chi.Mux, *gorm.DB, *domain.Project) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	customer := testutil.CreateTestCustomer(t, db, "Site Ops KK")
	project := testutil.CreateTestProject(t, db, customer.ID, "Site One")

	svc := service.NewMaintenanceService(
		repository.NewMaintenanceRepository(db),
		repository.NewProjectRepository(db),
		nil,
		zap.NewNop(),
	)
	h := handler.NewMaintenanceHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/maintenance", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
	})
	return r, db, project
}

func TestMaintenanceHandler_Create(t *testing.T) {
	r, _, project := newMaintenanceRouter(t)

	t.Run("accepts pending status", func(t *testing.T) {
		body := fmt.Sprintf(`{"project_id":%q,"status":"pending","situation":"Inverter fault alarm"}`, project.ID)
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.MaintenanceLogDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.MaintenanceStatusPending, got.Status)
	})

	t.Run("omitted status defaults to pending", func(t *testing.T) {
		body := fmt.Sprintf(`{"project_id":%q,"situation":"Panel soiling reported"}`, project.ID)
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.MaintenanceLogDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.MaintenanceStatusPending, got.Status)
	})

	t.Run("rejects statuses outside the enum", func(t *testing.T) {
		body := fmt.Sprintf(`{"project_id":%q,"status":"resolved"}`, project.ID)
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, "Must be one of: pending in_progress completed", apiErr.Errors["status"])
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		body := fmt.Sprintf(`{"project_id":%q,"status":"in_progress"}`, uuid.New())
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMaintenanceHandler_List(t *testing.T) {
	r, db, project := newMaintenanceRouter(t)

	require.NoError(t, db.Create(&domain.MaintenanceLog{
		ProjectID:  project.ID,
		TargetArea: "Array B",
		Status:     domain.MaintenanceStatusCompleted,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/maintenance?status=completed", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.MaintenanceLogDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Array B", got[0].TargetArea)
}
