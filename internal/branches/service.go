package branches

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

// Service exposes the branch use cases.
type Service interface {
	Create(ctx context.Context, input CreateBranchInput) (*BranchDTO, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*BranchDTO, error)
}

// CreateBranchInput holds the validated payload to create a branch.
type CreateBranchInput struct {
	Name        string
	FranchiseID uuid.UUID
}

type repository interface {
	Save(ctx context.Context, branch *models.Branch) (*models.Branch, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Branch, error)
}

type franchiseLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Franchise, error)
}

type service struct {
	repo       repository
	franchises franchiseLoader
}

// NewService constructs a branch service instance.
func NewService(repo repository, franchises franchiseLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("branch repository required")
	}
	if franchises == nil {
		return nil, fmt.Errorf("franchise loader required")
	}
	return &service{repo: repo, franchises: franchises}, nil
}

// Create registers a branch under an existing franchise. Branch names carry
// no uniqueness constraint, and name validation is left to the boundary; a
// missing franchise always wins over any payload concern.
func (s *service) Create(ctx context.Context, input CreateBranchInput) (*BranchDTO, error) {
	franchise, err := s.franchises.FindByID(ctx, input.FranchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "franchise not found")
	}

	now := time.Now().UTC()
	saved, err := s.repo.Save(ctx, &models.Branch{
		Name:        strings.TrimSpace(input.Name),
		FranchiseID: input.FranchiseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	return NewBranchDTO(saved), nil
}

// UpdateName renames an existing branch.
func (s *service) UpdateName(ctx context.Context, id uuid.UUID, name string) (*BranchDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "branch name is required")
	}

	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found")
	}

	branch.Name = name
	branch.UpdatedAt = models.NextUpdateTime(branch.UpdatedAt)

	saved, err := s.repo.Save(ctx, branch)
	if err != nil {
		return nil, err
	}
	return NewBranchDTO(saved), nil
}
