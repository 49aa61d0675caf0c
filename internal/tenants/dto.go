package tenants

import (
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// TenantDTO exposes safe tenant data in API responses. Shopify credentials
// never leave the service boundary.
type TenantDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ShopifyDomain string    `json:"shopify_domain"`
	SyncEnabled   bool      `json:"sync_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AdminUserDTO exposes the admin account created during onboarding.
type AdminUserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	TenantID  uuid.UUID `json:"tenant_id"`
}

// OnboardResultDTO is returned from a successful tenant registration.
type OnboardResultDTO struct {
	Tenant    TenantDTO    `json:"tenant"`
	AdminUser AdminUserDTO `json:"admin_user"`
}

// CreateTenantDTO holds creation-time data for a new tenant row.
type CreateTenantDTO struct {
	Name               string
	ShopifyDomain      string
	ShopifyAPIKey      string
	ShopifyAPISecret   string
	ShopifyAccessToken *string
}

// ToModel prepares the GORM model from the creation DTO.
func (c CreateTenantDTO) ToModel() *models.Tenant {
	return &models.Tenant{
		Name:               c.Name,
		ShopifyDomain:      c.ShopifyDomain,
		ShopifyAPIKey:      c.ShopifyAPIKey,
		ShopifyAPISecret:   c.ShopifyAPISecret,
		ShopifyAccessToken: c.ShopifyAccessToken,
	}
}

// FromModel maps the persisted tenant into a DTO.
func FromModel(m *models.Tenant) *TenantDTO {
	if m == nil {
		return nil
	}
	return &TenantDTO{
		ID:            m.ID,
		Name:          m.Name,
		ShopifyDomain: m.ShopifyDomain,
		SyncEnabled:   m.SyncEnabled(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func adminFromModel(m *models.User) AdminUserDTO {
	return AdminUserDTO{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      m.Role,
		TenantID:  m.TenantID,
	}
}
