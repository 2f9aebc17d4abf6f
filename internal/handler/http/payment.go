package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/payment"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	paymentsvc "github.com/sitekhata/labour-backend-go/internal/service/payment"
)

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByLabour(w http.ResponseWriter, r *http.Request)
	ListBySite(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService paymentsvc.Service
}

func NewPaymentHandler(paymentService paymentsvc.Service) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// Create implements PaymentHandler.
func (h *PaymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.paymentService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Payment create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", created)
}

// ListByLabour implements PaymentHandler.
func (h *PaymentHandlerImpl) ListByLabour(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListByLabour(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Payment list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ListBySite implements PaymentHandler. Managers are pinned to their
// own site; admins pass site_id explicitly.
func (h *PaymentHandlerImpl) ListBySite(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	siteID := r.URL.Query().Get("site_id")
	if actor.SiteID != nil {
		siteID = *actor.SiteID
	}

	payments, err := h.paymentService.ListBySite(r.Context(), siteID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Payment list error", "error", err, "site_id", siteID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// Update implements PaymentHandler.
func (h *PaymentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payment.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.paymentService.Update(r.Context(), actor, req)
	if err != nil {
		slog.Error("Payment update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements PaymentHandler.
func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.paymentService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted", nil)
}
