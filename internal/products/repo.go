package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// Repository handles product persistence. Every query is tenant-scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or refreshes one product keyed by (tenant_id, shopify_product_id).
// The conflict target makes concurrent writers converge on a single row.
func (r *Repository) Upsert(ctx context.Context, tenantID uuid.UUID, dto UpsertProductDTO) error {
	if dto.ShopifyProductID == "" {
		return fmt.Errorf("shopify product id is required")
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "shopify_product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "vendor", "product_type", "status", "price", "inventory", "updated_at",
			}),
		}).
		Create(dto.toModel(tenantID)).Error
}

// List returns one page of products for the tenant, newest first, with the
// total row count for the same filter.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Product, int64, error) {
	page = pagination.Normalize(page)

	qb := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("tenant_id = ?", tenantID)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(title) LIKE ? OR LOWER(vendor) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	if err := qb.
		Order("created_at DESC").Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountByTenant returns the number of mirrored products for the tenant.
func (r *Repository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
