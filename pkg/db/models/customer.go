package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer mirrors one Shopify customer for a tenant. The natural key is
// (tenant_id, shopify_customer_id).
type Customer struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ShopifyCustomerID string    `gorm:"column:shopify_customer_id;not null;uniqueIndex:customers_tenant_shopify_customer_idx,priority:2"`
	Email             string    `gorm:"column:email;not null"`
	Name              string    `gorm:"column:name;not null"`
	FirstName         *string   `gorm:"column:first_name"`
	LastName          *string   `gorm:"column:last_name"`
	TotalSpent        float64   `gorm:"column:total_spent;not null;default:0"`
	OrdersCount       int       `gorm:"column:orders_count;not null;default:0"`
	TenantID          uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:customers_tenant_id_idx;uniqueIndex:customers_tenant_shopify_customer_idx,priority:1"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
