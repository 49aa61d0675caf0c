package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storepulse/storepulse-backend/internal/customers"
	"github.com/storepulse/storepulse-backend/internal/orders"
	"github.com/storepulse/storepulse-backend/internal/products"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/shopify"
)

type productsRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, dto products.UpsertProductDTO) error
}

type customersRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, dto customers.UpsertCustomerDTO) error
	FindIDByShopifyID(ctx context.Context, tenantID uuid.UUID, shopifyCustomerID string) (uuid.UUID, error)
}

type ordersRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, dto orders.UpsertOrderDTO) error
}

type tenantsRepository interface {
	ListAll(ctx context.Context) ([]models.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*models.Tenant, error)
}

type shopifyFetcher interface {
	FetchProducts(ctx context.Context, creds shopify.Credentials) ([]shopify.Product, error)
	FetchOrders(ctx context.Context, creds shopify.Credentials) ([]shopify.Order, error)
}

// Service reconciles Shopify state into the tenant-scoped mirror. Both the
// sweep path and the webhook path funnel through the same Apply methods, so
// replays and races converge on identical rows.
type Service interface {
	SweepAll(ctx context.Context) (*SweepReport, error)
	ApplyProduct(ctx context.Context, tenantID uuid.UUID, payload shopify.Product) error
	ApplyCustomer(ctx context.Context, tenantID uuid.UUID, payload shopify.Customer) error
	ApplyOrder(ctx context.Context, tenantID uuid.UUID, payload shopify.Order) error
	TenantByDomain(ctx context.Context, domain string) (*models.Tenant, error)
}

type service struct {
	products  productsRepository
	customers customersRepository
	orders    ordersRepository
	tenants   tenantsRepository
	shopify   shopifyFetcher
	logg      *logger.Logger
}

// NewService wires the reconciler to its repositories and the Admin API client.
func NewService(
	productsRepo productsRepository,
	customersRepo customersRepository,
	ordersRepo ordersRepository,
	tenantsRepo tenantsRepository,
	fetcher shopifyFetcher,
	logg *logger.Logger,
) (Service, error) {
	if productsRepo == nil || customersRepo == nil || ordersRepo == nil || tenantsRepo == nil {
		return nil, fmt.Errorf("all repositories are required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("shopify client is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		products:  productsRepo,
		customers: customersRepo,
		orders:    ordersRepo,
		tenants:   tenantsRepo,
		shopify:   fetcher,
		logg:      logg,
	}, nil
}

// SweepAll refreshes every tenant's mirror from the Admin API. One tenant's
// failure never aborts the run; it is reported in that tenant's result.
func (s *service) SweepAll(ctx context.Context) (*SweepReport, error) {
	tenantList, err := s.tenants.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing tenants for sweep")
	}

	report := &SweepReport{Results: make([]TenantSweepResult, 0, len(tenantList))}
	for i := range tenantList {
		tenant := &tenantList[i]
		// tenants without an access token are not eligible and stay out of
		// the report entirely
		if !tenant.SyncEnabled() {
			continue
		}
		result := s.sweepTenant(ctx, tenant)
		report.Results = append(report.Results, result)

		fields := map[string]any{
			"tenant_id": tenant.ID.String(),
			"products":  result.ProductsSynced,
			"orders":    result.OrdersSynced,
			"customers": result.CustomersSynced,
			"success":   result.Success,
		}
		logCtx := s.logg.WithFields(ctx, fields)
		if result.Success {
			s.logg.Info(logCtx, "sweep.tenant.complete")
		} else {
			s.logg.Warn(logCtx, "sweep.tenant.failed")
		}
	}
	return report, nil
}

func (s *service) sweepTenant(ctx context.Context, tenant *models.Tenant) TenantSweepResult {
	result := TenantSweepResult{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
	}

	creds := shopify.Credentials{
		Domain:      tenant.ShopifyDomain,
		AccessToken: *tenant.ShopifyAccessToken,
	}

	productList, err := s.shopify.FetchProducts(ctx, creds)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	for _, p := range productList {
		if err := s.ApplyProduct(ctx, tenant.ID, p); err != nil {
			result.Error = err.Error()
			return result
		}
		result.ProductsSynced++
	}

	orderList, err := s.shopify.FetchOrders(ctx, creds)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	for _, o := range orderList {
		if err := s.ApplyOrder(ctx, tenant.ID, o); err != nil {
			result.Error = err.Error()
			return result
		}
		result.OrdersSynced++
		if o.Customer != nil && !o.Customer.ID.IsZero() {
			result.CustomersSynced++
		}
	}

	result.Success = true
	return result
}

// ApplyProduct mirrors one product payload.
func (s *service) ApplyProduct(ctx context.Context, tenantID uuid.UUID, payload shopify.Product) error {
	if payload.ID.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product payload missing id")
	}
	return s.products.Upsert(ctx, tenantID, products.UpsertProductDTO{
		ShopifyProductID: payload.ID.String(),
		Title:            payload.Title,
		Vendor:           payload.Vendor,
		ProductType:      payload.ProductType,
		Status:           payload.Status,
		Price:            payload.Price(),
		Inventory:        payload.Inventory(),
	})
}

// ApplyCustomer mirrors one customer payload.
func (s *service) ApplyCustomer(ctx context.Context, tenantID uuid.UUID, payload shopify.Customer) error {
	if payload.ID.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer payload missing id")
	}
	return s.customers.Upsert(ctx, tenantID, customers.UpsertCustomerDTO{
		ShopifyCustomerID: payload.ID.String(),
		Email:             payload.Email,
		FirstName:         optional(payload.FirstName),
		LastName:          optional(payload.LastName),
		TotalSpent:        payload.TotalSpent.Float64(),
		OrdersCount:       payload.OrdersCount,
	})
}

// ApplyOrder mirrors one order payload, first mirroring the embedded customer
// so the order row can reference it.
func (s *service) ApplyOrder(ctx context.Context, tenantID uuid.UUID, payload shopify.Order) error {
	if payload.ID.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "order payload missing id")
	}

	var customerID *uuid.UUID
	if payload.Customer != nil && !payload.Customer.ID.IsZero() {
		if err := s.ApplyCustomer(ctx, tenantID, *payload.Customer); err != nil {
			return err
		}
		id, err := s.customers.FindIDByShopifyID(ctx, tenantID, payload.Customer.ID.String())
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving mirrored customer")
		}
		if id != uuid.Nil {
			customerID = &id
		}
	}

	return s.orders.Upsert(ctx, tenantID, orders.UpsertOrderDTO{
		ShopifyOrderID:  payload.ID.String(),
		OrderNumber:     optional(payload.OrderNumber.String()),
		CustomerID:      customerID,
		CustomerEmail:   optional(payload.Email),
		TotalPrice:      payload.TotalPrice.Float64(),
		Status:          payload.Status(),
		FinancialStatus: optional(payload.FinancialStatus),
		OrderCreatedAt:  payload.CreatedAt,
	})
}

// TenantByDomain resolves a webhook's shop domain to the owning tenant.
func (s *service) TenantByDomain(ctx context.Context, domain string) (*models.Tenant, error) {
	tenant, err := s.tenants.FindByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no tenant registered for shop domain")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving tenant by domain")
	}
	return tenant, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
