package handler_test

import (
	"context"
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

func newCustomerRouter(t *testing.T) (*chi.Mux, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := service.NewCustomerService(repository.NewCustomerRepository(db), zap.NewNop())
	h := handler.NewCustomerHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r, db
}

func TestCustomerHandler_Create(t *testing.T) {
	r, _ := newCustomerRouter(t)

	t.Run("created", func(t *testing.T) {
		body := `{"type":"corporate","company_name":"Asahi Power","contact_name":"Yuki Tanaka"}`
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.CustomerDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Asahi Power", got.CompanyName)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("omitted type defaults to individual", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"contact_name":"田中太郎"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.CustomerDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.CustomerTypeIndividual, got.Type)
		assert.Equal(t, "田中太郎", got.ContactName)
	})

	t.Run("unknown type fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"type":"partnership","company_name":"Bad Type"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
		assert.Contains(t, apiErr.Errors, "type")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	r, db := newCustomerRouter(t)
	customer := testutil.CreateTestCustomer(t, db, "Detail Co")

	t.Run("projects is an empty array, never null", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers/"+customer.ID.String(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"projects":[]`)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var errResp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "customer not found", errResp.Message)
	})

	t.Run("garbage id is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	r, db := newCustomerRouter(t)
	testutil.CreateTestCustomer(t, db, "Zeta KK")
	testutil.CreateTestCustomer(t, db, "Alpha KK")

	t.Run("search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers?search=alpha", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.CustomerDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Alpha KK", got[0].CompanyName)
	})

	t.Run("sort by company name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers?sort=company_name", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.CustomerDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha KK", got[0].CompanyName)
		assert.Equal(t, "Zeta KK", got[1].CompanyName)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	r, db := newCustomerRouter(t)
	customer := testutil.CreateTestCustomer(t, db, "Short Lived")

	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.ID.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.WithContext(context.Background()).Model(&domain.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
