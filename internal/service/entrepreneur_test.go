package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
	"github.com/mahalla-hub/community-services/internal/repository/memory"
)

func TestDirectoryCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewEntrepreneurService(memory.New().Entrepreneurs())

	_, err := svc.Create(ctx, userA, model.EntrepreneurRequest{
		Name: "Aziz Rahimov", BusinessName: "AR Digital Solutions",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	entry, err := svc.Create(ctx, adminCaller, model.EntrepreneurRequest{
		Name: "Aziz Rahimov", BusinessName: "AR Digital Solutions",
		Category: "IT xizmatlari",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	// The directory itself is public.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "AR Digital Solutions", list[0].BusinessName)

	got, err := svc.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Name, got.Name)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDirectoryCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewEntrepreneurService(memory.New().Entrepreneurs())

	_, err := svc.Create(ctx, adminCaller, model.EntrepreneurRequest{BusinessName: "B"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, adminCaller, model.EntrepreneurRequest{Name: "A"})
	assert.Error(t, err)
}
