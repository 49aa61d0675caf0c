package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse-backend/internal/tenants"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
)

type stubTenantsService struct {
	lastInput tenants.OnboardInput
	result    *tenants.OnboardResultDTO
	err       error
}

func (s *stubTenantsService) Onboard(_ context.Context, input tenants.OnboardInput) (*tenants.OnboardResultDTO, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubTenantsService) GetByID(context.Context, uuid.UUID) (*tenants.TenantDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
}

func TestOnboardTenantCreated(t *testing.T) {
	tenantID := uuid.New()
	svc := &stubTenantsService{
		result: &tenants.OnboardResultDTO{
			Tenant: tenants.TenantDTO{ID: tenantID, Name: "Acme Outfitters", ShopifyDomain: "acme.myshopify.com"},
			AdminUser: tenants.AdminUserDTO{
				ID: uuid.New(), Email: "owner@acme.com", Role: "admin", TenantID: tenantID,
			},
		},
	}
	handler := OnboardTenant(svc, nil)

	body := `{
		"name": "Acme Outfitters",
		"shopify_domain": "ACME.myshopify.com",
		"shopify_access_token": "shpat_test",
		"admin_email": "owner@acme.com",
		"admin_password": "s3cret-pass"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ACME.myshopify.com", svc.lastInput.ShopifyDomain)
	assert.Equal(t, "shpat_test", svc.lastInput.ShopifyAccessToken)

	data := decodeData(t, rec)
	tenant, ok := data["tenant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme Outfitters", tenant["name"])
}

func TestOnboardTenantValidation(t *testing.T) {
	handler := OnboardTenant(&stubTenantsService{}, nil)

	body := `{"name": "Acme", "admin_email": "not-an-email", "admin_password": "short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, string(pkgerrors.CodeValidation), code)
}

func TestOnboardTenantDomainConflict(t *testing.T) {
	svc := &stubTenantsService{err: pkgerrors.New(pkgerrors.CodeConflict, "a tenant already exists for this shop domain")}
	handler := OnboardTenant(svc, nil)

	body := `{
		"name": "Acme Outfitters",
		"shopify_domain": "acme.myshopify.com",
		"admin_email": "owner@acme.com",
		"admin_password": "s3cret-pass"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	code, msg := decodeError(t, rec)
	assert.Equal(t, string(pkgerrors.CodeConflict), code)
	assert.Equal(t, "a tenant already exists for this shop domain", msg)
}

func TestOnboardTenantServiceUnavailable(t *testing.T) {
	handler := OnboardTenant(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
