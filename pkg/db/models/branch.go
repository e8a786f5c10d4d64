package models

import (
	"time"

	"github.com/google/uuid"
)

// Branch belongs to a franchise by id only; the parent is never loaded through
// the association. Branch names carry no uniqueness constraint.
type Branch struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	FranchiseID uuid.UUID `gorm:"column:franchise_id;type:uuid;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (Branch) TableName() string {
	return "branch"
}
