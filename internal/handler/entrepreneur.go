package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mahalla-hub/community-services/internal/middleware"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/service"
)

// EntrepreneurHandler holds the HTTP handlers for the business directory.
type EntrepreneurHandler struct {
	svc *service.EntrepreneurService
}

// NewEntrepreneurHandler constructs an EntrepreneurHandler.
func NewEntrepreneurHandler(svc *service.EntrepreneurService) *EntrepreneurHandler {
	return &EntrepreneurHandler{svc: svc}
}

// List handles GET /entrepreneurs
func (h *EntrepreneurHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entrepreneurs")
		return
	}
	if entries == nil {
		entries = []model.Entrepreneur{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Get handles GET /entrepreneurs/{id}
func (h *EntrepreneurHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Create handles POST /entrepreneurs (admin)
func (h *EntrepreneurHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.EntrepreneurRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry, err := h.svc.Create(r.Context(), middleware.IdentityFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
