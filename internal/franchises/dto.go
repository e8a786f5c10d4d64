package franchises

import (
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
)

// FranchiseDTO is the franchise payload returned to clients.
type FranchiseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFranchiseDTO(franchise *models.Franchise) *FranchiseDTO {
	return &FranchiseDTO{
		ID:        franchise.ID,
		Name:      franchise.Name,
		CreatedAt: franchise.CreatedAt,
		UpdatedAt: franchise.UpdatedAt,
	}
}
