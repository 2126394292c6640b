package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
	"github.com/mahalla-hub/community-services/internal/repository/memory"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret-32-bytes-long-xxxxx", time.Hour)
	require.NoError(t, err)
	return NewAuthService(memory.New().Users(), tokens)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	reg, err := svc.Register(ctx, model.RegisterRequest{
		Name: "Jasur", Email: "Jasur@Example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "jasur@example.com", reg.User.Email)
	assert.Equal(t, model.RoleUser, reg.User.Role)
	assert.False(t, reg.User.IsAdmin())

	// Sign-up followed immediately by sign-in with the same credentials.
	login, err := svc.Login(ctx, model.LoginRequest{
		Email: "jasur@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	tests := []struct {
		name string
		req  model.RegisterRequest
	}{
		{"missing name", model.RegisterRequest{Email: "a@example.com", Password: "password123"}},
		{"bad email", model.RegisterRequest{Name: "A", Email: "not-an-email", Password: "password123"}},
		{"short password", model.RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Name: "First", Email: "taken@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterRequest{
		Name: "Second", Email: "taken@example.com", Password: "password456",
	})
	assert.ErrorIs(t, err, repository.ErrAlreadyRegistered)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Name: "User", Email: "user@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown account is indistinguishable from a wrong password.
	_, err = svc.Login(ctx, model.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	reg, err := svc.Register(ctx, model.RegisterRequest{
		Name: "User", Email: "user@example.com", Password: "password123",
	})
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, &auth.Identity{UserID: reg.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)

	_, err = svc.CurrentUser(ctx, nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestProvisionAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.ProvisionAdmin(ctx, "Admin", "admin@example.com", "adminpass123"))

	login, err := svc.Login(ctx, model.LoginRequest{
		Email: "admin@example.com", Password: "adminpass123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, login.User.Role)
	assert.True(t, login.User.IsAdmin())

	// Idempotent on restart.
	require.NoError(t, svc.ProvisionAdmin(ctx, "Admin", "admin@example.com", "adminpass123"))

	// Disabled when unconfigured.
	require.NoError(t, svc.ProvisionAdmin(ctx, "Admin", "", ""))
}
