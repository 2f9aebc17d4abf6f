package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/expense"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	expensesvc "github.com/sitekhata/labour-backend-go/internal/service/expense"
)

type ExpenseHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListBySite(w http.ResponseWriter, r *http.Request)
	ListByLabour(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expensesvc.Service
}

func NewExpenseHandler(expenseService expensesvc.Service) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// Upsert implements ExpenseHandler. One row per labour and month; a
// second submission for the same month overwrites the first.
func (h *ExpenseHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req expense.UpsertExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.expenseService.Upsert(r.Context(), actor, req)
	if err != nil {
		slog.Error("Expense upsert error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, saved)
}

// ListBySite implements ExpenseHandler. Managers are pinned to their
// own site; admins pass site_id explicitly.
func (h *ExpenseHandlerImpl) ListBySite(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	siteID := r.URL.Query().Get("site_id")
	if actor.SiteID != nil {
		siteID = *actor.SiteID
	}

	expenses, err := h.expenseService.ListBySiteAndMonth(r.Context(), siteID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Expense list error", "error", err, "site_id", siteID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// ListByLabour implements ExpenseHandler.
func (h *ExpenseHandlerImpl) ListByLabour(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.ListByLabour(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Expense list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}
