package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse-backend/internal/auth"
	pkgAuth "github.com/storepulse/storepulse-backend/pkg/auth"
	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
)

type stubAuthService struct {
	loginResp   *auth.LoginResponse
	loginErr    error
	refreshResp *auth.LoginResponse
	refreshErr  error
	loggedOut   []string
}

func (s *stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Refresh(context.Context, auth.RefreshRequest) (*auth.LoginResponse, error) {
	return s.refreshResp, s.refreshErr
}

func (s *stubAuthService) Logout(_ context.Context, accessID string) error {
	s.loggedOut = append(s.loggedOut, accessID)
	return nil
}

func controllerJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "controller-secret", Issuer: "storepulse-test", ExpirationMinutes: 10}
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{
		loginResp: &auth.LoginResponse{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         auth.UserSummary{ID: uuid.New(), Email: "owner@acme.com", Role: "admin"},
		},
	}
	handler := AuthLogin(svc, nil)

	body := `{"email": "owner@acme.com", "password": "s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access-token", rec.Header().Get("X-SP-Token"))

	data := decodeData(t, rec)
	assert.Equal(t, "refresh-token", data["refresh_token"])
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := AuthLogin(svc, nil)

	body := `{"email": "owner@acme.com", "password": "wrong-pass-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	_, msg := decodeError(t, rec)
	assert.Equal(t, "invalid credentials", msg)
}

func TestAuthLoginRejectsMalformedBody(t *testing.T) {
	handler := AuthLogin(&stubAuthService{}, nil)

	body := `{"email": "owner@acme.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthRefreshSuccess(t *testing.T) {
	svc := &stubAuthService{
		refreshResp: &auth.LoginResponse{AccessToken: "new-access", RefreshToken: "new-refresh"},
	}
	handler := AuthRefresh(svc, nil)

	body := `{"access_token": "old-access", "refresh_token": "old-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new-access", rec.Header().Get("X-SP-Token"))
}

func TestAuthRefreshInvalidToken(t *testing.T) {
	svc := &stubAuthService{refreshErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")}
	handler := AuthRefresh(svc, nil)

	body := `{"access_token": "old-access", "refresh_token": "stale"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthLogoutRevokesSession(t *testing.T) {
	cfg := controllerJWTConfig()
	svc := &stubAuthService{}
	handler := AuthLogout(svc, cfg, nil)

	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Role:     "admin",
		JTI:      "session-jti",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.loggedOut, 1)
	assert.Equal(t, "session-jti", svc.loggedOut[0])
}

func TestAuthLogoutMissingHeader(t *testing.T) {
	handler := AuthLogout(&stubAuthService{}, controllerJWTConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
