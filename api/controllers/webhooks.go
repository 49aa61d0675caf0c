package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/api/validators"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/shopify"
)

const shopDomainHeader = "X-Shopify-Shop-Domain"

// WebhookProcessor applies single-resource Shopify pushes to the mirror.
type WebhookProcessor interface {
	TenantByDomain(ctx context.Context, domain string) (*models.Tenant, error)
	ApplyProduct(ctx context.Context, tenantID uuid.UUID, payload shopify.Product) error
	ApplyCustomer(ctx context.Context, tenantID uuid.UUID, payload shopify.Customer) error
	ApplyOrder(ctx context.Context, tenantID uuid.UUID, payload shopify.Order) error
}

// ShopifyProductWebhook ingests products/create and products/update pushes.
func ShopifyProductWebhook(svc WebhookProcessor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := resolveWebhookTenant(w, r, svc, logg)
		if !ok {
			return
		}

		var payload shopify.Product
		if err := decodeWebhookBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ApplyProduct(r.Context(), tenant.ID, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

// ShopifyCustomerWebhook ingests customers/create and customers/update pushes.
func ShopifyCustomerWebhook(svc WebhookProcessor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := resolveWebhookTenant(w, r, svc, logg)
		if !ok {
			return
		}

		var payload shopify.Customer
		if err := decodeWebhookBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ApplyCustomer(r.Context(), tenant.ID, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

// ShopifyOrderWebhook ingests orders/create and orders/updated pushes.
func ShopifyOrderWebhook(svc WebhookProcessor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := resolveWebhookTenant(w, r, svc, logg)
		if !ok {
			return
		}

		var payload shopify.Order
		if err := decodeWebhookBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ApplyOrder(r.Context(), tenant.ID, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

func resolveWebhookTenant(w http.ResponseWriter, r *http.Request, svc WebhookProcessor, logg *logger.Logger) (*models.Tenant, bool) {
	if svc == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sync service unavailable"))
		return nil, false
	}

	domain := validators.SanitizeString(r.Header.Get(shopDomainHeader), 255)
	if domain == "" {
		err := pkgerrors.New(pkgerrors.CodeValidation, "missing shop domain header").
			WithDetails(map[string]string{"header": shopDomainHeader})
		responses.WriteError(r.Context(), logg, w, err)
		return nil, false
	}

	tenant, err := svc.TenantByDomain(r.Context(), domain)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return nil, false
	}
	return tenant, true
}

// decodeWebhookBody tolerates the extra fields Shopify sends alongside the
// ones mirrored here, unlike the strict decoder used for our own API bodies.
func decodeWebhookBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid webhook body").WithDetails(map[string]any{"error": err.Error()})
	}
	return nil
}
