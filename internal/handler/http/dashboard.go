package http

import (
	"log/slog"
	"net/http"

	"github.com/ems-labs/ems-backend-go/internal/domain/dashboard"
	"github.com/ems-labs/ems-backend-go/internal/domain/workhours"
	"github.com/ems-labs/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetMyOverview(w http.ResponseWriter, r *http.Request)
	GetMyWorkHours(w http.ResponseWriter, r *http.Request)
	GetEmployeeWorkHours(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	workHoursService workhours.WorkHoursService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, workHoursService workhours.WorkHoursService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		workHoursService: workHoursService,
	}
}

// GetOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		slog.Error("Get dashboard overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) GetMyOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetMyOverview(r.Context())
	if err != nil {
		slog.Error("Get my overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyWorkHours implements DashboardHandler.
func (h *dashboardHandlerImpl) GetMyWorkHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.workHoursService.GetMySummary(r.Context())
	if err != nil {
		slog.Error("Get my work hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeWorkHours implements DashboardHandler.
func (h *dashboardHandlerImpl) GetEmployeeWorkHours(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	result, err := h.workHoursService.GetSummaryByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("Get employee work hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
