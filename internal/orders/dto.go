package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// OrderDTO exposes the mirrored order in API responses.
type OrderDTO struct {
	ID              uuid.UUID         `json:"id"`
	ShopifyOrderID  string            `json:"shopify_order_id"`
	OrderNumber     *string           `json:"order_number,omitempty"`
	CustomerID      *uuid.UUID        `json:"customer_id,omitempty"`
	Customer        *OrderCustomerDTO `json:"customer,omitempty"`
	CustomerEmail   *string           `json:"customer_email,omitempty"`
	TotalPrice      float64           `json:"total_price"`
	Status          string            `json:"status"`
	FinancialStatus *string           `json:"financial_status,omitempty"`
	OrderCreatedAt  time.Time         `json:"order_created_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// OrderCustomerDTO is the joined customer summary embedded in order listings.
// Guest checkouts have no customer and the field is omitted entirely.
type OrderCustomerDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UpsertOrderDTO carries one order snapshot from Shopify into the mirror.
// CustomerID is the mirror row id resolved before the write, nil for guest
// checkouts or customers not mirrored yet.
type UpsertOrderDTO struct {
	ShopifyOrderID  string
	OrderNumber     *string
	CustomerID      *uuid.UUID
	CustomerEmail   *string
	TotalPrice      float64
	Status          string
	FinancialStatus *string
	OrderCreatedAt  time.Time
}

func (u UpsertOrderDTO) toModel(tenantID uuid.UUID) *models.Order {
	return &models.Order{
		TenantID:        tenantID,
		ShopifyOrderID:  u.ShopifyOrderID,
		OrderNumber:     u.OrderNumber,
		CustomerID:      u.CustomerID,
		CustomerEmail:   u.CustomerEmail,
		TotalPrice:      u.TotalPrice,
		Status:          u.Status,
		FinancialStatus: u.FinancialStatus,
		OrderCreatedAt:  u.OrderCreatedAt,
	}
}

// FromModel maps the persisted order into a DTO.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	var customer *OrderCustomerDTO
	if m.Customer != nil {
		customer = &OrderCustomerDTO{ID: m.Customer.ID, Name: m.Customer.Name, Email: m.Customer.Email}
	}
	return &OrderDTO{
		ID:              m.ID,
		ShopifyOrderID:  m.ShopifyOrderID,
		OrderNumber:     m.OrderNumber,
		CustomerID:      m.CustomerID,
		Customer:        customer,
		CustomerEmail:   m.CustomerEmail,
		TotalPrice:      m.TotalPrice,
		Status:          m.Status,
		FinancialStatus: m.FinancialStatus,
		OrderCreatedAt:  m.OrderCreatedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromModels maps a page of orders into DTOs.
func FromModels(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
