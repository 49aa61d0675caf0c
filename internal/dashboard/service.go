package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/internal/customers"
	"github.com/storepulse/storepulse-backend/internal/orders"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
)

const (
	// dateFormat renders bucket labels like "Jan 02".
	dateFormat = "Jan 02"

	topCustomersLimit = 5
	recentOrdersLimit = 10

	// DefaultTimelineDays is the lookback window when none is requested.
	DefaultTimelineDays = 30
	// MaxTimelineDays caps the lookback window.
	MaxTimelineDays = 365
)

type productsCounter interface {
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type customersReader interface {
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	TopBySpend(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Customer, error)
}

type ordersReader interface {
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	RevenueByTenant(ctx context.Context, tenantID uuid.UUID) (float64, error)
	Recent(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Order, error)
	Since(ctx context.Context, tenantID uuid.UUID, cutoff time.Time) ([]models.Order, error)
}

// Service computes tenant-scoped dashboard aggregations.
type Service interface {
	Summary(ctx context.Context, tenantID uuid.UUID) (*SummaryDTO, error)
	OrdersTimeline(ctx context.Context, tenantID uuid.UUID, days int) (*TimelineDTO, error)
}

type service struct {
	products  productsCounter
	customers customersReader
	orders    ordersReader
	now       func() time.Time
}

// NewService wires the dashboard to its repositories.
func NewService(productsRepo productsCounter, customersRepo customersReader, ordersRepo ordersReader) (Service, error) {
	if productsRepo == nil || customersRepo == nil || ordersRepo == nil {
		return nil, fmt.Errorf("all repositories are required")
	}
	return &service{
		products:  productsRepo,
		customers: customersRepo,
		orders:    ordersRepo,
		now:       time.Now,
	}, nil
}

// Summary returns the headline totals plus top customers and recent orders.
func (s *service) Summary(ctx context.Context, tenantID uuid.UUID) (*SummaryDTO, error) {
	totalProducts, err := s.products.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting products")
	}
	totalCustomers, err := s.customers.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting customers")
	}
	totalOrders, err := s.orders.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting orders")
	}
	revenue, err := s.orders.RevenueByTenant(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summing revenue")
	}
	top, err := s.customers.TopBySpend(ctx, tenantID, topCustomersLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading top customers")
	}
	recent, err := s.orders.Recent(ctx, tenantID, recentOrdersLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading recent orders")
	}

	return &SummaryDTO{
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
		TotalOrders:    totalOrders,
		TotalRevenue:   revenue,
		TopCustomers:   customers.FromModels(top),
		RecentOrders:   orders.FromModels(recent),
	}, nil
}

// OrdersTimeline groups orders from the lookback window into per-day buckets,
// oldest day first. Days without orders are absent from the result.
func (s *service) OrdersTimeline(ctx context.Context, tenantID uuid.UUID, days int) (*TimelineDTO, error) {
	if days <= 0 {
		days = DefaultTimelineDays
	}
	if days > MaxTimelineDays {
		days = MaxTimelineDays
	}

	// the boundary day counts in full, so the cutoff is its midnight
	cutoff := s.now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	rows, err := s.orders.Since(ctx, tenantID, cutoff)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading timeline orders")
	}

	buckets := []TimelineBucket{}
	index := map[string]int{}
	for i := range rows {
		label := rows[i].OrderCreatedAt.UTC().Format(dateFormat)
		pos, ok := index[label]
		if !ok {
			pos = len(buckets)
			index[label] = pos
			buckets = append(buckets, TimelineBucket{Date: label})
		}
		buckets[pos].Orders++
		buckets[pos].Revenue += rows[i].TotalPrice
	}

	return &TimelineDTO{Days: days, Buckets: buckets}, nil
}
