package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mahalla-hub/community-services/internal/middleware"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/service"
)

// UnemployedHandler holds the HTTP handlers for the unemployment registry.
type UnemployedHandler struct {
	svc *service.UnemployedService
}

// NewUnemployedHandler constructs an UnemployedHandler.
func NewUnemployedHandler(svc *service.UnemployedService) *UnemployedHandler {
	return &UnemployedHandler{svc: svc}
}

// List handles GET /unemployed (admin)
func (h *UnemployedHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.List(r.Context(), middleware.IdentityFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if people == nil {
		people = []model.UnemployedPerson{}
	}
	writeJSON(w, http.StatusOK, people)
}

// Get handles GET /unemployed/{id} (admin)
func (h *UnemployedHandler) Get(w http.ResponseWriter, r *http.Request) {
	person, err := h.svc.Get(r.Context(), middleware.IdentityFromContext(r.Context()),
		chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// Create handles POST /unemployed (admin)
func (h *UnemployedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.UnemployedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	person, err := h.svc.Create(r.Context(), middleware.IdentityFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, person)
}

// UpdateStatus handles PATCH /unemployed/{id}/status (admin)
// The status transition is the only mutation the registry exposes.
func (h *UnemployedHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	person, err := h.svc.UpdateStatus(r.Context(), middleware.IdentityFromContext(r.Context()),
		chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}
