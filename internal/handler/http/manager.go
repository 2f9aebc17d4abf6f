package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/user"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	usersvc "github.com/sitekhata/labour-backend-go/internal/service/user"
)

type ManagerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ManagerHandlerImpl struct {
	userService usersvc.Service
}

func NewManagerHandler(userService usersvc.Service) ManagerHandler {
	return &ManagerHandlerImpl{userService: userService}
}

// Create implements ManagerHandler.
func (h *ManagerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateManagerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateManager(r.Context(), req)
	if err != nil {
		slog.Error("Manager create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manager created", created)
}

// List implements ManagerHandler.
func (h *ManagerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	managers, err := h.userService.ListManagers(r.Context())
	if err != nil {
		slog.Error("Manager list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, managers)
}

// Update implements ManagerHandler.
func (h *ManagerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateManagerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.userService.UpdateManager(r.Context(), req)
	if err != nil {
		slog.Error("Manager update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements ManagerHandler.
func (h *ManagerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteManager(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager deleted", nil)
}
