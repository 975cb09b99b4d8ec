package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/service"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create an invoice under a contract
// @Description Create an invoice. Status defaults to unbilled; creating directly as paid stamps paid_at.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Param request body domain.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id}/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	contractID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, err := h.invoiceService.Create(r.Context(), contractID, &req)
	if err != nil {
		if err != service.ErrContractNotFound {
			h.logger.Error("failed to create invoice", zap.Error(err), zap.String("contract_id", contractID.String()))
		}
		respondServiceError(w, err, "Failed to create invoice")
		return
	}

	respondJSON(w, http.StatusCreated, invoice)
}

// ListByContract godoc
// @Summary List a contract's invoices
// @Description Get invoices for a contract, newest billing period first
// @Tags Invoices
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Success 200 {array} domain.InvoiceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id}/invoices [get]
func (h *InvoiceHandler) ListByContract(w http.ResponseWriter, r *http.Request) {
	contractID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListByContract(r.Context(), contractID)
	if err != nil {
		if err != service.ErrContractNotFound {
			h.logger.Error("failed to list invoices", zap.Error(err), zap.String("contract_id", contractID.String()))
		}
		respondServiceError(w, err, "Failed to list invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// ListAll godoc
// @Summary List all invoices
// @Description Get every invoice flattened with its project and customer names, newest billing period first
// @Tags Invoices
// @Produce json
// @Success 200 {array} domain.InvoiceWithProjectDTO
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/invoices/all [get]
func (h *InvoiceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list all invoices", zap.Error(err))
		respondServiceError(w, err, "Failed to list invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// GetByID godoc
// @Summary Get invoice by ID
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		if err != service.ErrInvoiceNotFound {
			h.logger.Error("failed to get invoice", zap.Error(err), zap.String("invoice_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get invoice")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// Update godoc
// @Summary Update an invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Param request body domain.UpdateInvoiceRequest true "Invoice"
// @Success 200 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/invoices/{id} [put]
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, err := h.invoiceService.Update(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrInvoiceNotFound {
			h.logger.Error("failed to update invoice", zap.Error(err), zap.String("invoice_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update invoice")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// UpdateStatus godoc
// @Summary Change invoice status
// @Description Move an invoice between unbilled, billed and paid. Moving to paid stamps paid_at (supplied or now); any other status clears it.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Param request body domain.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateInvoiceStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrInvoiceNotFound {
			h.logger.Error("failed to update invoice status", zap.Error(err), zap.String("invoice_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update invoice status")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// Delete godoc
// @Summary Delete an invoice
// @Tags Invoices
// @Param id path string true "Invoice ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(r.Context(), id); err != nil {
		if err != service.ErrInvoiceNotFound {
			h.logger.Error("failed to delete invoice", zap.Error(err), zap.String("invoice_id", id.String()))
		}
		respondServiceError(w, err, "Failed to delete invoice")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
