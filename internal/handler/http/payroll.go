package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	payrollsvc "github.com/sitekhata/labour-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	LabourSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollsvc.Service
}

func NewPayrollHandler(payrollService payrollsvc.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Report implements PayrollHandler. With export=1 the statement is
// streamed as an xlsx attachment instead of JSON.
func (h *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	siteID := query.Get("site_id")
	month := query.Get("month")

	if siteID == "" || month == "" {
		response.BadRequest(w, "site_id and month are required", nil)
		return
	}

	if query.Get("export") == "1" {
		buf, filename, err := h.payrollService.Export(r.Context(), siteID, month)
		if err != nil {
			slog.Error("Payroll export error", "error", err, "site_id", siteID, "month", month)
			response.HandleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("Payroll export write error", "error", err)
		}
		return
	}

	report, err := h.payrollService.Report(r.Context(), siteID, month)
	if err != nil {
		slog.Error("Payroll report error", "error", err, "site_id", siteID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// LabourSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) LabourSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.payrollService.LabourSummary(r.Context(), actor, chi.URLParam(r, "id"), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Labour summary error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
