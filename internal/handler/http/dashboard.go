package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acss-labs/acss-backend-go/internal/domain/dashboard"
	"github.com/acss-labs/acss-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	trendDays, _ := strconv.Atoi(q.Get("trend_days"))

	resp, err := h.dashboardService.GetDashboard(r.Context(), date, trendDays)
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
