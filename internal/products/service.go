package products

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

// Service exposes the product use cases.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*ProductDTO, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*ProductDTO, error)
	TopStockByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]TopStockDTO, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name     string
	Stock    int
	BranchID uuid.UUID
}

type repository interface {
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	ExistsByNameAndBranch(ctx context.Context, name string, branchID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	TopStockByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]models.TopStockProduct, error)
}

type branchLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Branch, error)
}

type service struct {
	repo     repository
	branches branchLoader
}

// NewService constructs a product service instance.
func NewService(repo repository, branches branchLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if branches == nil {
		return nil, fmt.Errorf("branch loader required")
	}
	return &service{repo: repo, branches: branches}, nil
}

// Create registers a product under an existing branch. A missing branch
// always preempts a duplicate-name conflict; the ordering is part of the
// contract.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product stock must not be negative")
	}

	branch, err := s.branches.FindByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found")
	}

	exists, err := s.repo.ExistsByNameAndBranch(ctx, name, input.BranchID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already exists in branch")
	}

	now := time.Now().UTC()
	saved, err := s.repo.Save(ctx, &models.Product{
		Name:      name,
		Stock:     input.Stock,
		BranchID:  input.BranchID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return NewProductDTO(saved), nil
}

// Delete removes an existing product.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.repo.DeleteByID(ctx, id)
}

// UpdateStock replaces the stock count. Negative stock is rejected before any
// lookup runs.
func (s *service) UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*ProductDTO, error) {
	if stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product stock must not be negative")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	product.Stock = stock
	product.UpdatedAt = models.NextUpdateTime(product.UpdatedAt)

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(saved), nil
}

// UpdateName renames an existing product.
func (s *service) UpdateName(ctx context.Context, id uuid.UUID, name string) (*ProductDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	product.Name = name
	product.UpdatedAt = models.NextUpdateTime(product.UpdatedAt)

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(saved), nil
}

// TopStockByFranchise is a pass-through read: no validation, no branching.
func (s *service) TopStockByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]TopStockDTO, error) {
	rows, err := s.repo.TopStockByFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	return NewTopStockDTOs(rows), nil
}
