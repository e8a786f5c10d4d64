package franchises

import (
	"context"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
	"gorm.io/gorm"
)

// Repository is the franchise persistence gateway. Every database round-trip
// goes through the shared resilience policy; no business logic lives here.
type Repository struct {
	db     *gorm.DB
	policy *resilience.Policy
}

// NewRepository builds a repository tied to the provided GORM DB and policy.
func NewRepository(conn *gorm.DB, policy *resilience.Policy) *Repository {
	return &Repository{db: conn, policy: policy}
}

// Save persists the franchise, inserting when the id is unset.
func (r *Repository) Save(ctx context.Context, franchise *models.Franchise) (*models.Franchise, error) {
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(franchise).Error
	})
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: save franchise")
	}
	return franchise, nil
}

// ExistsByName reports whether any franchise carries the exact name.
func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&models.Franchise{}).
			Where("name = ?", name).
			Count(&count).
			Error
	})
	if err != nil {
		return false, db.WrapGatewayError(err, "db: franchise exists by name")
	}
	return count > 0, nil
}

// FindByID loads the franchise. An absent row is (nil, nil), not a failure;
// the empty-result marker crosses the policy so it lands in the ignored set
// instead of the breaker window.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Franchise, error) {
	var row models.Franchise
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	})
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: find franchise by id")
	}
	return &row, nil
}
