package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/attendance"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
	attendancesvc "github.com/sitekhata/labour-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Sheet(w http.ResponseWriter, r *http.Request)
	LabourMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendancesvc.Service
}

func NewAttendanceHandler(attendanceService attendancesvc.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler. Managers mark their own site's
// roster in bulk; re-marking a date overwrites the earlier flags.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.BulkMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BulkMark(r.Context(), actor, *actor.SiteID, req)
	if err != nil {
		slog.Error("Attendance mark error", "error", err, "site_id", *actor.SiteID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

// Sheet implements AttendanceHandler. Without a date query it serves
// today's sheet.
func (h *AttendanceHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "Invalid date format, expected YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	sheet, err := h.attendanceService.Sheet(r.Context(), *actor.SiteID, date)
	if err != nil {
		slog.Error("Attendance sheet error", "error", err, "site_id", *actor.SiteID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// LabourMonth implements AttendanceHandler. Managers are pinned to
// their own site; admins pass site_id explicitly.
func (h *AttendanceHandlerImpl) LabourMonth(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	siteID := r.URL.Query().Get("site_id")
	if actor.SiteID != nil {
		siteID = *actor.SiteID
	}

	records, err := h.attendanceService.MonthForLabour(r.Context(), chi.URLParam(r, "id"), siteID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Attendance month error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
