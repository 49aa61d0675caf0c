package customers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// CustomerDTO exposes the mirrored customer in API responses.
type CustomerDTO struct {
	ID                uuid.UUID `json:"id"`
	ShopifyCustomerID string    `json:"shopify_customer_id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	TotalSpent        float64   `json:"total_spent"`
	OrdersCount       int       `json:"orders_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpsertCustomerDTO carries one customer snapshot from Shopify into the mirror.
type UpsertCustomerDTO struct {
	ShopifyCustomerID string
	Email             string
	FirstName         *string
	LastName          *string
	TotalSpent        float64
	OrdersCount       int
}

func (u UpsertCustomerDTO) toModel(tenantID uuid.UUID) *models.Customer {
	return &models.Customer{
		TenantID:          tenantID,
		ShopifyCustomerID: u.ShopifyCustomerID,
		Email:             u.Email,
		Name:              displayName(u.FirstName, u.LastName, u.Email),
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		TotalSpent:        u.TotalSpent,
		OrdersCount:       u.OrdersCount,
	}
}

// displayName joins the name parts, falling back to the email when both are empty.
func displayName(first, last *string, email string) string {
	parts := []string{}
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return email
	}
	return strings.Join(parts, " ")
}

// FromModel maps the persisted customer into a DTO.
func FromModel(m *models.Customer) *CustomerDTO {
	if m == nil {
		return nil
	}
	return &CustomerDTO{
		ID:                m.ID,
		ShopifyCustomerID: m.ShopifyCustomerID,
		Email:             m.Email,
		Name:              m.Name,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		TotalSpent:        m.TotalSpent,
		OrdersCount:       m.OrdersCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromModels maps a page of customers into DTOs.
func FromModels(rows []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
