package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
)

// ProductDTO is the product payload returned to clients.
type ProductDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	BranchID  uuid.UUID `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:        product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
		BranchID:  product.BranchID,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// TopStockDTO is one row of the per-branch max-stock report.
type TopStockDTO struct {
	BranchID    uuid.UUID `json:"branch_id"`
	BranchName  string    `json:"branch_name"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Stock       int       `json:"stock"`
}

func NewTopStockDTOs(rows []models.TopStockProduct) []TopStockDTO {
	dtos := make([]TopStockDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, TopStockDTO{
			BranchID:    row.BranchID,
			BranchName:  row.BranchName,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Stock:       row.Stock,
		})
	}
	return dtos
}
