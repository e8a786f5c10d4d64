package models

import (
	"time"

	"github.com/google/uuid"
)

// Franchise is the root entity; its name is unique across all franchises,
// backed by a DB constraint (uq_franchise_name).
type Franchise struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:uq_franchise_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName keeps the singular table names the schema uses.
func (Franchise) TableName() string {
	return "franchise"
}
