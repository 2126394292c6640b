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

// EntrepreneurService manages the public business directory.
type EntrepreneurService struct {
	entrepreneurs repository.EntrepreneurStore
}

// NewEntrepreneurService constructs an EntrepreneurService.
func NewEntrepreneurService(entrepreneurs repository.EntrepreneurStore) *EntrepreneurService {
	return &EntrepreneurService{entrepreneurs: entrepreneurs}
}

// List returns all directory entries.
func (s *EntrepreneurService) List(ctx context.Context) ([]model.Entrepreneur, error) {
	return s.entrepreneurs.List(ctx)
}

// Get returns a single directory entry by ID.
func (s *EntrepreneurService) Get(ctx context.Context, id string) (*model.Entrepreneur, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	return s.entrepreneurs.GetByID(ctx, id)
}

// Create adds a directory entry. Admin only.
func (s *EntrepreneurService) Create(ctx context.Context, caller *auth.Identity, req model.EntrepreneurRequest) (*model.Entrepreneur, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("entrepreneur name is required")
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, fmt.Errorf("business name is required")
	}

	entry := &model.Entrepreneur{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		BusinessName: strings.TrimSpace(req.BusinessName),
		Category:     req.Category,
		Description:  req.Description,
		ContactInfo:  req.ContactInfo,
		JoinDate:     req.JoinDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.entrepreneurs.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entrepreneur: %w", err)
	}
	return entry, nil
}
