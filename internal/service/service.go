// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer. Admin-only operations
// re-check the caller's role here, not only at the routing layer.
package service

import (
	"errors"
	"strings"

	"github.com/mahalla-hub/community-services/internal/auth"
)

// ErrNotAuthenticated is returned when an operation requires a signed-in caller.
var ErrNotAuthenticated = errors.New("must sign in")

// ErrForbidden is returned when an operation requires the admin role.
var ErrForbidden = errors.New("admin role required")

// ErrInvalidCredentials is returned when an email/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid email or password")

func requireAuth(caller *auth.Identity) error {
	if caller == nil {
		return ErrNotAuthenticated
	}
	return nil
}

func requireAdmin(caller *auth.Identity) error {
	if caller == nil {
		return ErrNotAuthenticated
	}
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// isValidEmail does a basic structural check (no external deps).
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
