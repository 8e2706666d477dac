package http

import (
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/dashboard"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	CompanyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// CompanyStats implements DashboardHandler.
func (h *dashboardHandlerImpl) CompanyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.CompanyStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
