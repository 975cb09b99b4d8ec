package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/service"
)

type ContractHandler struct {
	contractService *service.ContractService
	logger          *zap.Logger
}

func NewContractHandler(contractService *service.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create a contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body domain.CreateContractRequest true "Contract"
// @Success 201 {object} domain.ContractDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts [post]
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	contract, err := h.contractService.Create(r.Context(), &req)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to create contract", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to create contract")
		return
	}

	respondJSON(w, http.StatusCreated, contract)
}

// GetByID godoc
// @Summary Get contract by ID
// @Tags Contracts
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.GetByID(r.Context(), id)
	if err != nil {
		if err != service.ErrContractNotFound {
			h.logger.Error("failed to get contract", zap.Error(err), zap.String("contract_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

// Update godoc
// @Summary Update a contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Param request body domain.UpdateContractRequest true "Contract"
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateContractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	contract, err := h.contractService.Update(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrContractNotFound {
			h.logger.Error("failed to update contract", zap.Error(err), zap.String("contract_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

// Delete godoc
// @Summary Delete a contract
// @Tags Contracts
// @Param id path string true "Contract ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.contractService.Delete(r.Context(), id); err != nil {
		if err != service.ErrContractNotFound {
			h.logger.Error("failed to delete contract", zap.Error(err), zap.String("contract_id", id.String()))
		}
		respondServiceError(w, err, "Failed to delete contract")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// ListByProject godoc
// @Summary List a project's contracts
// @Description Get contracts for a project, each with its invoices ordered newest billing period first
// @Tags Contracts
// @Produce json
// @Param projectId path string true "Project ID" format(uuid)
// @Success 200 {array} domain.ContractWithInvoicesDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contracts/project/{projectId} [get]
func (h *ContractHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseIDParam(w, r, "projectId")
	if !ok {
		return
	}

	contracts, err := h.contractService.ListByProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error("failed to list contracts", zap.Error(err), zap.String("project_id", projectID.String()))
		respondServiceError(w, err, "Failed to list contracts")
		return
	}

	respondJSON(w, http.StatusOK, contracts)
}
