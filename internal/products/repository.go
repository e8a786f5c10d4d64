package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
	"gorm.io/gorm"
)

// topStockQuery selects, for every branch of the franchise, the product
// holding the maximum stock in that branch.
const topStockQuery = `
SELECT b.id   AS branch_id,
       b.name AS branch_name,
       p.id   AS product_id,
       p.name AS product_name,
       p.stock
FROM product p
JOIN branch b ON p.branch_id = b.id
WHERE b.franchise_id = ?
  AND p.stock = (
    SELECT MAX(p2.stock)
    FROM product p2
    WHERE p2.branch_id = b.id
  )
ORDER BY p.stock DESC
`

// Repository is the product persistence gateway.
type Repository struct {
	db     *gorm.DB
	policy *resilience.Policy
}

func NewRepository(conn *gorm.DB, policy *resilience.Policy) *Repository {
	return &Repository{db: conn, policy: policy}
}

// Save persists the product, inserting when the id is unset.
func (r *Repository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(product).Error
	})
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: save product")
	}
	return product, nil
}

// ExistsByNameAndBranch reports whether the branch already holds a product
// with the exact name.
func (r *Repository) ExistsByNameAndBranch(ctx context.Context, name string, branchID uuid.UUID) (bool, error) {
	var count int64
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&models.Product{}).
			Where("name = ? AND branch_id = ?", name, branchID).
			Count(&count).
			Error
	})
	if err != nil {
		return false, db.WrapGatewayError(err, "db: product exists by name and branch")
	}
	return count > 0, nil
}

// FindByID loads the product. An absent row is (nil, nil), not a failure; the
// empty-result marker crosses the policy as an ignored outcome.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var row models.Product
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	})
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: find product by id")
	}
	return &row, nil
}

// DeleteByID removes the product row.
func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return db.WrapGatewayError(err, "db: delete product")
	}
	return nil
}

// TopStockByFranchise returns the per-branch max-stock projection for the
// franchise, highest stock first. An unknown franchise yields an empty slice.
func (r *Repository) TopStockByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]models.TopStockProduct, error) {
	var rows []models.TopStockProduct
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Raw(topStockQuery, franchiseID).Scan(&rows).Error
	})
	if err != nil {
		return nil, db.WrapGatewayError(err, "db: top stock by franchise")
	}
	return rows, nil
}
