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

func newInvoiceRouter(t *testing.T) (*chi.Mux, *gorm.DB, *domain.Contract) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	customer := testutil.CreateTestCustomer(t, db, "Billing Test KK")
	project := testutil.CreateTestProject(t, db, customer.ID, "Billing Plant")
	contract := testutil.CreateTestContract(t, db, project.ID)

	svc := service.NewInvoiceService(
		repository.NewInvoiceRepository(db),
		repository.NewContractRepository(db),
		zap.NewNop(),
	)
	h := handler.NewInvoiceHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/contracts", func(r chi.Router) {
		r.Get("/invoices/{id}", h.GetByID)
		r.Patch("/invoices/{id}/status", h.UpdateStatus)
		r.Post("/{id}/invoices", h.Create)
		r.Get("/{id}/invoices", h.ListByContract)
	})
	return r, db, contract
}

func TestInvoiceHandler_Create(t *testing.T) {
	r, _, contract := newInvoiceRouter(t)

	t.Run("created with defaults", func(t *testing.T) {
		body := `{"billing_period":"2026-05","amount":120000}`
		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contract.ID.String()+"/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.InvoiceDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.InvoiceStatusUnbilled, got.Status)
		assert.Nil(t, got.PaidAt)
	})

	t.Run("malformed period fails validation", func(t *testing.T) {
		body := `{"billing_period":"May 2026","amount":120000}`
		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contract.ID.String()+"/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, "Must be a period in YYYY-MM format", apiErr.Errors["billing_period"])
	})

	t.Run("unknown contract is 404", func(t *testing.T) {
		body := `{"billing_period":"2026-05","amount":120000}`
		req := httptest.NewRequest(http.MethodPost, "/contracts/"+uuid.NewString()+"/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	r, db, contract := newInvoiceRouter(t)

	invoice := &domain.Invoice{
		ContractID:    contract.ID,
		BillingPeriod: "2026-06",
		Amount:        90000,
		Status:        domain.InvoiceStatusBilled,
	}
	require.NoError(t, db.Create(invoice).Error)

	t.Run("paid stamps paid_at", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/contracts/invoices/"+invoice.ID.String()+"/status", strings.NewReader(`{"status":"paid"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.InvoiceDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
		assert.NotNil(t, got.PaidAt)
	})

	t.Run("rejected status fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/contracts/invoices/"+invoice.ID.String()+"/status", strings.NewReader(`{"status":"overdue"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Contains(t, apiErr.Errors, "status")
	})

	t.Run("unknown invoice is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/contracts/invoices/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"billed"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInvoiceHandler_ListByContract(t *testing.T) {
	r, db, contract := newInvoiceRouter(t)

	for _, period := range []string{"2026-01", "2026-02"} {
		require.NoError(t, db.Create(&domain.Invoice{
			ContractID:    contract.ID,
			BillingPeriod: period,
			Amount:        50000,
			Status:        domain.InvoiceStatusUnbilled,
		}).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+contract.ID.String()+"/invoices", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.InvoiceDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2026-02", got[0].BillingPeriod, "newest period first")
}
