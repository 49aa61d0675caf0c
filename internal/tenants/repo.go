package tenants

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// Repository handles tenant persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to tenant operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithTx inserts a tenant using the provided transaction.
func (r *Repository) CreateWithTx(tx *gorm.DB, dto CreateTenantDTO) (*models.Tenant, error) {
	if tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	tenant := dto.ToModel()
	if err := tx.Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

// FindByID loads a tenant by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// FindByDomain loads a tenant by its Shopify shop domain.
func (r *Repository) FindByDomain(ctx context.Context, domain string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).Where("shopify_domain = ?", domain).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// ListAll returns every tenant ordered by creation time.
func (r *Repository) ListAll(ctx context.Context) ([]models.Tenant, error) {
	var list []models.Tenant
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
