package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// List godoc
// @Summary List customers
// @Description Get customers with optional filters. Search matches contact name, company name and email, case-insensitive.
// @Tags Customers
// @Produce json
// @Param search query string false "Substring search"
// @Param type query string false "Filter by type" Enums(individual, corporate)
// @Param sort query string false "Sort order" Enums(company_name)
// @Success 200 {array} domain.CustomerDTO
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.CustomerFilter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		Sort:   r.URL.Query().Get("sort"),
	}

	customers, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		respondServiceError(w, err, "Failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// Create godoc
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body domain.CreateCustomerRequest true "Customer"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create customer", zap.Error(err))
		respondServiceError(w, err, "Failed to create customer")
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// GetByID godoc
// @Summary Get customer by ID
// @Description Get a customer with its projects. Projects is always present, empty when none exist.
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.CustomerWithProjectsDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		if err != service.ErrCustomerNotFound {
			h.logger.Error("failed to get customer", zap.Error(err), zap.String("customer_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Update godoc
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Param request body domain.UpdateCustomerRequest true "Customer"
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrCustomerNotFound {
			h.logger.Error("failed to update customer", zap.Error(err), zap.String("customer_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer
// @Tags Customers
// @Param id path string true "Customer ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		if err != service.ErrCustomerNotFound {
			h.logger.Error("failed to delete customer", zap.Error(err), zap.String("customer_id", id.String()))
		}
		respondServiceError(w, err, "Failed to delete customer")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
