package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/middleware"
)

// Handlers bundles the per-area handlers the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Courses       *CourseHandler
	Entrepreneurs *EntrepreneurHandler
	Unemployed    *UnemployedHandler
}

// NewRouter builds the chi router with the full middleware stack and all
// API routes. The SPA bundle in ./web is served at the root.
func NewRouter(log *zap.Logger, tokens *auth.TokenManager, corsOrigins []string, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Authenticate(tokens))

	r.Get("/health", HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.With(middleware.RequireAuth).Get("/me", h.Auth.Me)
	})

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.Courses.List)
		r.Get("/{id}", h.Courses.Get)
		r.With(middleware.RequireAuth).Post("/{id}/enroll", h.Courses.Enroll)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.Courses.Create)
			r.Put("/{id}", h.Courses.Update)
			r.Delete("/{id}", h.Courses.Delete)
			r.Get("/{id}/enrollments", h.Courses.ListEnrollments)
		})
	})

	r.With(middleware.RequireAuth).Get("/profile/courses", h.Courses.EnrolledCourses)

	r.Route("/entrepreneurs", func(r chi.Router) {
		r.Get("/", h.Entrepreneurs.List)
		r.Get("/{id}", h.Entrepreneurs.Get)
		r.With(middleware.RequireAdmin).Post("/", h.Entrepreneurs.Create)
	})

	r.Route("/unemployed", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.Unemployed.List)
		r.Get("/{id}", h.Unemployed.Get)
		r.Post("/", h.Unemployed.Create)
		r.Patch("/{id}/status", h.Unemployed.UpdateStatus)
	})

	// Static SPA bundle. The client-side routes (/login, /admin, …) resolve
	// inside the bundle; route guards there are a convenience only, the real
	// checks happen above.
	r.Handle("/*", http.FileServer(http.Dir("./web")))

	return r
}
