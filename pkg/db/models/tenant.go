package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is one onboarded Shopify store, the unit of data isolation.
type Tenant struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name               string    `gorm:"column:name;not null"`
	ShopifyDomain      string    `gorm:"column:shopify_domain;not null;uniqueIndex:tenants_shopify_domain_idx"`
	ShopifyAPIKey      string    `gorm:"column:shopify_api_key;not null"`
	ShopifyAPISecret   string    `gorm:"column:shopify_api_secret;not null"`
	ShopifyAccessToken *string   `gorm:"column:shopify_access_token"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// SyncEnabled reports whether the tenant holds an access token usable for sweeps.
func (t *Tenant) SyncEnabled() bool {
	return t.ShopifyAccessToken != nil && *t.ShopifyAccessToken != ""
}

func (t *Tenant) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
