package http

import (
	"net/http"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/dashboard"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetMetrics implements DashboardHandler.
func (h *DashboardHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.GetMetrics(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, metrics)
}
