package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
	laboursvc "github.com/sitekhata/labour-backend-go/internal/service/labour"
)

// Document uploads cap out at 10 MiB per file.
const maxDocumentSize = 10 << 20

type LabourHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)
	ManagerList(w http.ResponseWriter, r *http.Request)
}

type LabourHandlerImpl struct {
	labourService laboursvc.Service
}

func NewLabourHandler(labourService laboursvc.Service) LabourHandler {
	return &LabourHandlerImpl{labourService: labourService}
}

// Create implements LabourHandler.
func (h *LabourHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req labour.CreateLabourRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.labourService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Labour create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Labour created", created)
}

// GetByID implements LabourHandler.
func (h *LabourHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.labourService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements LabourHandler.
func (h *LabourHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := labour.Filter{
		Search:     query.Get("search"),
		ActiveOnly: query.Get("active") == "1",
	}
	if siteID := query.Get("site_id"); siteID != "" {
		filter.SiteID = &siteID
	}

	labours, err := h.labourService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Labour list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, labours)
}

// ManagerList implements LabourHandler. The listing is pinned to the
// manager's own site.
func (h *LabourHandlerImpl) ManagerList(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	filter := labour.Filter{
		SiteID:     actor.SiteID,
		Search:     query.Get("search"),
		ActiveOnly: query.Get("active") == "1",
	}

	labours, err := h.labourService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Labour list error", "error", err, "site_id", filter.SiteID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, labours)
}

// Update implements LabourHandler.
func (h *LabourHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req labour.UpdateLabourRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.labourService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Labour update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements LabourHandler.
func (h *LabourHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.labourService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labour deleted", nil)
}

// UploadDocument implements LabourHandler. It accepts a multipart form
// with a "kind" field and a "file" part.
func (h *LabourHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing document file", nil)
		return
	}
	defer file.Close()

	kind := r.FormValue("kind")
	contentType := header.Header.Get("Content-Type")

	updated, err := h.labourService.UploadDocument(r.Context(), chi.URLParam(r, "id"), kind, header.Filename, contentType, file)
	if err != nil {
		slog.Error("Labour document upload error", "error", err, "kind", kind)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// DownloadDocument implements LabourHandler.
func (h *LabourHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	doc, err := h.labourService.OpenDocument(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer doc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, doc); err != nil {
		slog.Error("Labour document stream error", "error", err, "kind", kind)
	}
}
