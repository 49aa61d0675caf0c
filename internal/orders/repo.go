package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// Repository handles order persistence. Every query is tenant-scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or refreshes one order keyed by (tenant_id, shopify_order_id).
// Re-syncing the same order converges on a single row regardless of how many
// writers race on it.
func (r *Repository) Upsert(ctx context.Context, tenantID uuid.UUID, dto UpsertOrderDTO) error {
	if dto.ShopifyOrderID == "" {
		return fmt.Errorf("shopify order id is required")
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "shopify_order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"order_number", "customer_id", "customer_email", "total_price",
				"status", "financial_status", "order_created_at", "updated_at",
			}),
		}).
		Create(dto.toModel(tenantID)).Error
}

// List returns one page of orders for the tenant, most recent order date
// first, with the total row count for the same filter.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Order, int64, error) {
	page = pagination.Normalize(page)

	qb := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("tenant_id = ?", tenantID)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(order_number) LIKE ? OR LOWER(customer_email) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	if err := qb.
		Preload("Customer").
		Order("order_created_at DESC").Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Recent returns the latest orders for the tenant by order date.
func (r *Repository) Recent(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("tenant_id = ?", tenantID).
		Order("order_created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Since returns all orders placed on or after the cutoff, oldest first. The
// dashboard groups them into a per-day timeline in memory.
func (r *Repository) Since(ctx context.Context, tenantID uuid.UUID, cutoff time.Time) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND order_created_at >= ?", tenantID, cutoff).
		Order("order_created_at ASC").
		Find(&rows).Error
	return rows, err
}

// CountByTenant returns the number of mirrored orders for the tenant.
func (r *Repository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}

// RevenueByTenant sums total_price across all mirrored orders for the tenant.
func (r *Repository) RevenueByTenant(ctx context.Context, tenantID uuid.UUID) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	return revenue, err
}
