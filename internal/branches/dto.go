package branches

import (
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
)

// BranchDTO is the branch payload returned to clients.
type BranchDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	FranchiseID uuid.UUID `json:"franchise_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBranchDTO(branch *models.Branch) *BranchDTO {
	return &BranchDTO{
		ID:          branch.ID,
		Name:        branch.Name,
		FranchiseID: branch.FranchiseID,
		CreatedAt:   branch.CreatedAt,
		UpdatedAt:   branch.UpdatedAt,
	}
}
