package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// BillingSummary godoc
// @Summary Monthly billing summary
// @Description Get the invoices for one billing month, flattened through contract and project to the owning customer. Year and month default to the current date.
// @Tags Dashboard
// @Produce json
// @Param year query int false "Billing year"
// @Param month query int false "Billing month (1-12)"
// @Param status query string false "Filter by invoice status" Enums(unbilled, billed, paid)
// @Success 200 {object} domain.BillingSummaryDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/billing-summary [get]
func (h *DashboardHandler) BillingSummary(w http.ResponseWriter, r *http.Request) {
	var year, month int
	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid year: must be an integer")
			return
		}
		year = v
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid month: must be an integer")
			return
		}
		month = v
	}

	summary, err := h.dashboardService.BillingSummary(r.Context(), year, month, r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Error("failed to build billing summary", zap.Error(err))
		respondServiceError(w, err, "Failed to build billing summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
