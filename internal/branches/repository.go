package branches

import (
	"context"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
	"gorm.io/gorm"
)

// Repository is the branch persistence gateway.
type Repository struct {
	db     *gorm.DB
	policy *resilience.Policy
}

func NewRepository(conn *gorm.DB, policy *resilience.Policy) *Repository {
	return &Repository{db: conn, policy: policy}
}

// Save persists the branch, inserting when the id is unset.
func (r *Repository) Save(ctx context.Context, branch *models.Branch) (*models.Branch, error) {
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(branch).Error
	})
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: save branch")
	}
	return branch, nil
}

// FindByID loads the branch. An absent row is (nil, nil), not a failure; the
// empty-result marker crosses the policy as an ignored outcome.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Branch, error) {
	var row models.Branch
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	})
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: find branch by id")
	}
	return &row, nil
}
