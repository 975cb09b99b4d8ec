package handler

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/service"
)

// maxPhotoSize caps maintenance photo uploads at 10 MiB
const maxPhotoSize = 10 << 20

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
	logger             *zap.Logger
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// List godoc
// @Summary List maintenance logs
// @Description Get maintenance logs with optional filters, newest inquiry first. Search matches target area and situation.
// @Tags Maintenance
// @Produce json
// @Param project_id query string false "Filter by project" format(uuid)
// @Param status query string false "Filter by status" Enums(pending, in_progress, completed)
// @Param search query string false "Substring search"
// @Success 200 {array} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance [get]
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.MaintenanceFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid project_id: must be a UUID")
			return
		}
		filter.ProjectID = &projectID
	}

	logs, err := h.maintenanceService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list maintenance logs", zap.Error(err))
		respondServiceError(w, err, "Failed to list maintenance logs")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// Create godoc
// @Summary Create a maintenance log
// @Description Record a maintenance log. The reporter is taken from the authenticated user.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body domain.CreateMaintenanceRequest true "Maintenance log"
// @Success 201 {object} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance [post]
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMaintenanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	log, err := h.maintenanceService.Create(r.Context(), &req)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to create maintenance log", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to create maintenance log")
		return
	}

	respondJSON(w, http.StatusCreated, log)
}

// GetByID godoc
// @Summary Get maintenance log by ID
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance log ID" format(uuid)
// @Success 200 {object} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	log, err := h.maintenanceService.GetByID(r.Context(), id)
	if err != nil {
		if err != service.ErrMaintenanceLogNotFound {
			h.logger.Error("failed to get maintenance log", zap.Error(err), zap.String("maintenance_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get maintenance log")
		return
	}

	respondJSON(w, http.StatusOK, log)
}

// Update godoc
// @Summary Update a maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance log ID" format(uuid)
// @Param request body domain.UpdateMaintenanceRequest true "Maintenance log"
// @Success 200 {object} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id} [put]
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateMaintenanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	log, err := h.maintenanceService.Update(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrMaintenanceLogNotFound {
			h.logger.Error("failed to update maintenance log", zap.Error(err), zap.String("maintenance_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update maintenance log")
		return
	}

	respondJSON(w, http.StatusOK, log)
}

// Delete godoc
// @Summary Delete a maintenance log
// @Tags Maintenance
// @Param id path string true "Maintenance log ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(r.Context(), id); err != nil {
		if err != service.ErrMaintenanceLogNotFound {
			h.logger.Error("failed to delete maintenance log", zap.Error(err), zap.String("maintenance_id", id.String()))
		}
		respondServiceError(w, err, "Failed to delete maintenance log")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// UploadPhoto godoc
// @Summary Attach a report photo
// @Description Upload a photo through the storage backend and store its path on the log. Max 10 MiB.
// @Tags Maintenance
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Maintenance log ID" format(uuid)
// @Param photo formData file true "Photo file"
// @Success 200 {object} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id}/photo [post]
func (h *MaintenanceHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing form file 'photo'")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log, err := h.maintenanceService.AttachPhoto(r.Context(), id, header.Filename, contentType, file)
	if err != nil {
		if err != service.ErrMaintenanceLogNotFound {
			h.logger.Error("failed to attach photo", zap.Error(err), zap.String("maintenance_id", id.String()))
		}
		respondServiceError(w, err, "Failed to attach photo")
		return
	}

	respondJSON(w, http.StatusOK, log)
}
