package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order mirrors one Shopify order for a tenant. The natural key is
// (tenant_id, shopify_order_id). CustomerID is null for guest checkouts and
// CustomerEmail is an independent snapshot from the order payload.
type Order struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ShopifyOrderID  string     `gorm:"column:shopify_order_id;not null;uniqueIndex:orders_tenant_shopify_order_idx,priority:2"`
	OrderNumber     *string    `gorm:"column:order_number"`
	CustomerID      *uuid.UUID `gorm:"column:customer_id;type:uuid;index:orders_customer_id_idx"`
	Customer        *Customer  `gorm:"foreignKey:CustomerID"`
	CustomerEmail   *string    `gorm:"column:customer_email"`
	TotalPrice      float64    `gorm:"column:total_price;not null;default:0"`
	Status          string     `gorm:"column:status;not null"`
	FinancialStatus *string    `gorm:"column:financial_status"`
	OrderCreatedAt  time.Time  `gorm:"column:order_created_at;not null"`
	TenantID        uuid.UUID  `gorm:"column:tenant_id;type:uuid;not null;index:orders_tenant_id_idx;uniqueIndex:orders_tenant_shopify_order_idx,priority:1"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
