package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// Repository handles customer persistence. Every query is tenant-scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to customer operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or refreshes one customer keyed by (tenant_id, shopify_customer_id).
func (r *Repository) Upsert(ctx context.Context, tenantID uuid.UUID, dto UpsertCustomerDTO) error {
	if dto.ShopifyCustomerID == "" {
		return fmt.Errorf("shopify customer id is required")
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "shopify_customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "name", "first_name", "last_name", "total_spent", "orders_count", "updated_at",
			}),
		}).
		Create(dto.toModel(tenantID)).Error
}

// FindIDByShopifyID resolves the mirror row id for a Shopify customer id.
// Returns uuid.Nil without error when the customer is not mirrored yet.
func (r *Repository) FindIDByShopifyID(ctx context.Context, tenantID uuid.UUID, shopifyCustomerID string) (uuid.UUID, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Select("id").
		Where("tenant_id = ? AND shopify_customer_id = ?", tenantID, shopifyCustomerID).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}

// List returns one page of customers for the tenant ordered by lifetime spend,
// with the total row count for the same filter.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Customer, int64, error) {
	page = pagination.Normalize(page)

	qb := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("tenant_id = ?", tenantID)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)", pattern, pattern, pattern)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Customer
	if err := qb.
		Order("total_spent DESC").Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// TopBySpend returns the highest lifetime spenders for the tenant.
func (r *Repository) TopBySpend(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("total_spent DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountByTenant returns the number of mirrored customers for the tenant.
func (r *Repository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
