package models

import (
	"time"

	"github.com/google/uuid"
)

// Product lives under a branch; the (name, branch_id) pair is unique, backed
// by a DB constraint (uq_product_name_branch). Stock never goes negative.
type Product struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:uq_product_name_branch"`
	Stock     int       `gorm:"column:stock;not null;default:0"`
	BranchID  uuid.UUID `gorm:"column:branch_id;type:uuid;not null;uniqueIndex:uq_product_name_branch"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (Product) TableName() string {
	return "product"
}

// TopStockProduct is the read projection for the per-branch max-stock report.
// It is derived by query, never stored.
type TopStockProduct struct {
	BranchID    uuid.UUID `gorm:"column:branch_id"`
	BranchName  string    `gorm:"column:branch_name"`
	ProductID   uuid.UUID `gorm:"column:product_id"`
	ProductName string    `gorm:"column:product_name"`
	Stock       int       `gorm:"column:stock"`
}
