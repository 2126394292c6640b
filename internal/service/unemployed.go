package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

// UnemployedService manages the admin-only unemployment registry.
type UnemployedService struct {
	unemployed repository.UnemployedStore
}

// NewUnemployedService constructs an UnemployedService.
func NewUnemployedService(unemployed repository.UnemployedStore) *UnemployedService {
	return &UnemployedService{unemployed: unemployed}
}

// List returns all registry entries. Admin only.
func (s *UnemployedService) List(ctx context.Context, caller *auth.Identity) ([]model.UnemployedPerson, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.unemployed.List(ctx)
}

// Get returns a single registry entry. Admin only.
func (s *UnemployedService) Get(ctx context.Context, caller *auth.Identity, id string) (*model.UnemployedPerson, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, repository.ErrNotFound
	}
	return s.unemployed.GetByID(ctx, id)
}

// Create adds a registry entry with status active. Admin only.
func (s *UnemployedService) Create(ctx context.Context, caller *auth.Identity, req model.UnemployedRequest) (*model.UnemployedPerson, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Age < 0 {
		return nil, fmt.Errorf("age cannot be negative")
	}

	person := &model.UnemployedPerson{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(req.Name),
		Age:              req.Age,
		Skills:           req.Skills,
		Education:        req.Education,
		ContactInfo:      req.ContactInfo,
		RegistrationDate: req.RegistrationDate,
		Status:           model.StatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.unemployed.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("create registry entry: %w", err)
	}
	return person, nil
}

// UpdateStatus transitions a registry entry to a new status. Admin only.
// This is the only mutation the registry exposes.
func (s *UnemployedService) UpdateStatus(ctx context.Context, caller *auth.Identity, id string, status model.EmploymentStatus) (*model.UnemployedPerson, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	return s.unemployed.UpdateStatus(ctx, id, status)
}
