package controllers

import (
	"net/http"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/api/validators"
	"github.com/storepulse/storepulse-backend/internal/tenants"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

type onboardTenantRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=120"`
	ShopifyDomain      string `json:"shopify_domain" validate:"required,min=4,max=255"`
	ShopifyAPIKey      string `json:"shopify_api_key" validate:"omitempty,max=255"`
	ShopifyAPISecret   string `json:"shopify_api_secret" validate:"omitempty,max=255"`
	ShopifyAccessToken string `json:"shopify_access_token" validate:"omitempty,max=255"`
	AdminEmail         string `json:"admin_email" validate:"required,email"`
	AdminPassword      string `json:"admin_password" validate:"required,min=8,max=128"`
	AdminFirstName     string `json:"admin_first_name" validate:"omitempty,max=80"`
	AdminLastName      string `json:"admin_last_name" validate:"omitempty,max=80"`
}

// OnboardTenant registers a shop and its first admin in one transaction.
func OnboardTenant(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tenant service unavailable"))
			return
		}

		var body onboardTenantRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Onboard(r.Context(), tenants.OnboardInput{
			Name:               validators.SanitizeString(body.Name, 120),
			ShopifyDomain:      validators.SanitizeString(body.ShopifyDomain, 255),
			ShopifyAPIKey:      validators.SanitizeString(body.ShopifyAPIKey, 255),
			ShopifyAPISecret:   validators.SanitizeString(body.ShopifyAPISecret, 255),
			ShopifyAccessToken: validators.SanitizeString(body.ShopifyAccessToken, 255),
			AdminEmail:         validators.SanitizeString(body.AdminEmail, 255),
			AdminPassword:      body.AdminPassword,
			AdminFirstName:     validators.SanitizeString(body.AdminFirstName, 80),
			AdminLastName:      validators.SanitizeString(body.AdminLastName, 80),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
