package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// ProductDTO exposes the mirrored product in API responses.
type ProductDTO struct {
	ID               uuid.UUID `json:"id"`
	ShopifyProductID string    `json:"shopify_product_id"`
	Title            string    `json:"title"`
	Vendor           string    `json:"vendor"`
	ProductType      string    `json:"product_type"`
	Status           string    `json:"status"`
	Price            float64   `json:"price"`
	Inventory        int       `json:"inventory"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UpsertProductDTO carries one product snapshot from Shopify into the mirror.
type UpsertProductDTO struct {
	ShopifyProductID string
	Title            string
	Vendor           string
	ProductType      string
	Status           string
	Price            float64
	Inventory        int
}

func (u UpsertProductDTO) toModel(tenantID uuid.UUID) *models.Product {
	return &models.Product{
		TenantID:         tenantID,
		ShopifyProductID: u.ShopifyProductID,
		Title:            u.Title,
		Vendor:           u.Vendor,
		ProductType:      u.ProductType,
		Status:           u.Status,
		Price:            u.Price,
		Inventory:        u.Inventory,
	}
}

// FromModel maps the persisted product into a DTO.
func FromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:               m.ID,
		ShopifyProductID: m.ShopifyProductID,
		Title:            m.Title,
		Vendor:           m.Vendor,
		ProductType:      m.ProductType,
		Status:           m.Status,
		Price:            m.Price,
		Inventory:        m.Inventory,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromModels maps a page of products into DTOs.
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
