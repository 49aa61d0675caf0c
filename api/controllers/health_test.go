package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func testAppConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	handler := HealthLive(testAppConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-StorePulse-Env"))

	data := decodeData(t, rec)
	assert.Equal(t, "live", data["status"])
}

func TestHealthReady(t *testing.T) {
	handler := HealthReady(testAppConfig(), nil, stubPinger{}, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "ready", data["status"])
}

func TestHealthReadyDatabaseDown(t *testing.T) {
	handler := HealthReady(testAppConfig(), nil, stubPinger{err: errors.New("connection refused")}, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthReadyRedisDown(t *testing.T) {
	handler := HealthReady(testAppConfig(), nil, stubPinger{}, stubPinger{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPrivatePingIncludesTenant(t *testing.T) {
	handler := PrivatePing()

	tenantID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withTenant(req, tenantID))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "private", data["scope"])
	assert.Equal(t, tenantID.String(), data["tenant_id"])
}

func TestPrivatePingWithoutTenant(t *testing.T) {
	handler := PrivatePing()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	_, hasTenant := data["tenant_id"]
	assert.False(t, hasTenant)
}
