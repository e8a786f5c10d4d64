package franchises

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

// Service exposes the franchise use cases.
type Service interface {
	Create(ctx context.Context, name string) (*FranchiseDTO, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*FranchiseDTO, error)
}

type repository interface {
	Save(ctx context.Context, franchise *models.Franchise) (*models.Franchise, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Franchise, error)
}

type service struct {
	repo repository
}

// NewService constructs a franchise service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("franchise repository required")
	}
	return &service{repo: repo}, nil
}

// Create registers a new franchise after checking the name is unused. The
// existence check and the save are not atomic; the DB unique constraint backs
// the invariant under concurrent creates and surfaces as a conflict.
func (s *service) Create(ctx context.Context, name string) (*FranchiseDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "franchise name is required")
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "franchise already exists")
	}

	now := time.Now().UTC()
	saved, err := s.repo.Save(ctx, &models.Franchise{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return NewFranchiseDTO(saved), nil
}

// UpdateName renames an existing franchise.
func (s *service) UpdateName(ctx context.Context, id uuid.UUID, name string) (*FranchiseDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "franchise name is required")
	}

	franchise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "franchise not found")
	}

	franchise.Name = name
	franchise.UpdatedAt = models.NextUpdateTime(franchise.UpdatedAt)

	saved, err := s.repo.Save(ctx, franchise)
	if err != nil {
		return nil, err
	}
	return NewFranchiseDTO(saved), nil
}
