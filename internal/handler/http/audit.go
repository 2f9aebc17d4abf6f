package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditRepository audit.AuditRepository
}

func NewAuditHandler(auditRepository audit.AuditRepository) AuditHandler {
	return &AuditHandlerImpl{auditRepository: auditRepository}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := audit.Filter{Action: query.Get("action")}
	if siteID := query.Get("site_id"); siteID != "" {
		filter.SiteID = &siteID
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.auditRepository.List(r.Context(), filter)
	if err != nil {
		slog.Error("Audit list error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToResponse(e))
	}
	response.Success(w, responses)
}
