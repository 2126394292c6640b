package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mahalla-hub/community-services/internal/middleware"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/service"
)

// CourseHandler holds the HTTP handlers for the course catalog and enrollment.
type CourseHandler struct {
	svc *service.CourseService
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// List handles GET /courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list courses")
		return
	}
	// Return an empty array rather than null for better client compatibility.
	if courses == nil {
		courses = []model.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

// Get handles GET /courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// Create handles POST /courses (admin)
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CourseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	course, err := h.svc.Create(r.Context(), middleware.IdentityFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// Update handles PUT /courses/{id} (admin)
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CourseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	course, err := h.svc.Update(r.Context(), middleware.IdentityFromContext(r.Context()),
		chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /courses/{id} (admin)
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), middleware.IdentityFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Enroll handles POST /courses/{id}/enroll
// Performs the capacity-checked enrollment and returns the updated course.
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	course, err := h.svc.Enroll(r.Context(), middleware.IdentityFromContext(r.Context()),
		chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// ListEnrollments handles GET /courses/{id}/enrollments (admin)
func (h *CourseHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.svc.ListEnrollments(r.Context(),
		middleware.IdentityFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	writeJSON(w, http.StatusOK, enrollments)
}

// EnrolledCourses handles GET /profile/courses
// Returns the caller's enrolled courses for the profile page.
func (h *CourseHandler) EnrolledCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.EnrolledCourses(r.Context(), middleware.IdentityFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}
