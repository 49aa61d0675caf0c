package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product mirrors one Shopify product for a tenant. The natural key is
// (tenant_id, shopify_product_id).
type Product struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ShopifyProductID string    `gorm:"column:shopify_product_id;not null;uniqueIndex:products_tenant_shopify_product_idx,priority:2"`
	Title            string    `gorm:"column:title;not null"`
	Vendor           string    `gorm:"column:vendor;not null;default:''"`
	ProductType      string    `gorm:"column:product_type;not null;default:''"`
	Status           string    `gorm:"column:status;not null;default:''"`
	Price            float64   `gorm:"column:price;not null;default:0"`
	Inventory        int       `gorm:"column:inventory;not null;default:0"`
	TenantID         uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:products_tenant_id_idx;uniqueIndex:products_tenant_shopify_product_idx,priority:1"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
