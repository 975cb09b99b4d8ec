package handler

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/service"
)

type ProjectHandler struct {
	projectService     *service.ProjectService
	maintenanceService *service.MaintenanceService
	logger             *zap.Logger
}

func NewProjectHandler(
	projectService *service.ProjectService,
	maintenanceService *service.MaintenanceService,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:     projectService,
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// List godoc
// @Summary List projects
// @Description Get projects with optional filters. Search matches project name and number.
// @Tags Projects
// @Produce json
// @Param customer_id query string false "Filter by owning customer" format(uuid)
// @Param status query string false "Filter by status" Enums(planning, construction, operating, suspended, closed)
// @Param search query string false "Substring search"
// @Success 200 {array} domain.ProjectDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProjectFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid customer_id: must be a UUID")
			return
		}
		filter.CustomerID = &customerID
	}

	projects, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		respondServiceError(w, err, "Failed to list projects")
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

// Create godoc
// @Summary Create a project
// @Description Create a project with optional nested power plant spec and regulatory info, written in one transaction
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body domain.CreateProjectRequest true "Project"
// @Success 201 {object} domain.ProjectDetailDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		if err != service.ErrCustomerNotFound {
			h.logger.Error("failed to create project", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to create project")
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

// GetByID godoc
// @Summary Get project detail
// @Description Get a project with its power plant spec and regulatory info. Missing satellites serialize as null.
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.ProjectDetailDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetDetail(r.Context(), id)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to get project", zap.Error(err), zap.String("project_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Update godoc
// @Summary Update a project
// @Description Update project fields. Nested satellite payloads are upserted when present, untouched when omitted.
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.UpdateProjectRequest true "Project"
// @Success 200 {object} domain.ProjectDetailDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, &req)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to update project", zap.Error(err), zap.String("project_id", id.String()))
		}
		respondServiceError(w, err, "Failed to update project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags Projects
// @Param id path string true "Project ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to delete project", zap.Error(err), zap.String("project_id", id.String()))
		}
		respondServiceError(w, err, "Failed to delete project")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// GetSpecs godoc
// @Summary Get a project's power plant spec
// @Description Get the project's power plant spec. Serializes as null when the project has none recorded.
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.PowerPlantSpecDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/specs [get]
func (h *ProjectHandler) GetSpecs(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	spec, err := h.projectService.GetSpec(r.Context(), id)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to get power plant spec", zap.Error(err), zap.String("project_id", id.String()))
		}
		respondServiceError(w, err, "Failed to get power plant spec")
		return
	}

	respondJSON(w, http.StatusOK, spec)
}

// ListMaintenance godoc
// @Summary List a project's maintenance logs
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {array} domain.MaintenanceLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/maintenance [get]
func (h *ProjectHandler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	logs, err := h.maintenanceService.ListByProject(r.Context(), id)
	if err != nil {
		if err != service.ErrProjectNotFound {
			h.logger.Error("failed to list project maintenance", zap.Error(err), zap.String("project_id", id.String()))
		}
		respondServiceError(w, err, "Failed to list maintenance logs")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}
