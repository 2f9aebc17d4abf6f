package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/sitekhata/labour-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	SiteDetail(w http.ResponseWriter, r *http.Request)
	ManagerSite(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboardsvc.Service
}

func NewDashboardHandler(dashboardService dashboardsvc.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.Overview(r.Context(), time.Now().UTC())
	if err != nil {
		slog.Error("Dashboard overview error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// SiteDetail implements DashboardHandler.
func (h *DashboardHandlerImpl) SiteDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.dashboardService.SiteDetail(r.Context(), chi.URLParam(r, "id"), time.Now().UTC())
	if err != nil {
		slog.Error("Dashboard site detail error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// ManagerSite implements DashboardHandler. It serves the detail card
// for the manager's own site.
func (h *DashboardHandlerImpl) ManagerSite(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	detail, err := h.dashboardService.SiteDetail(r.Context(), *actor.SiteID, time.Now().UTC())
	if err != nil {
		slog.Error("Dashboard site detail error", "error", err, "site_id", *actor.SiteID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}
