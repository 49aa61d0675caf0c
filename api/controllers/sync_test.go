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

	syncsvc "github.com/storepulse/storepulse-backend/internal/sync"
)

type stubSweeper struct {
	report *syncsvc.SweepReport
	err    error
	calls  int
}

func (s *stubSweeper) SweepAll(context.Context) (*syncsvc.SweepReport, error) {
	s.calls++
	return s.report, s.err
}

func TestTriggerSyncReturnsReport(t *testing.T) {
	sweeper := &stubSweeper{
		report: &syncsvc.SweepReport{
			Results: []syncsvc.TenantSweepResult{
				{TenantID: uuid.New(), TenantName: "Acme Outfitters", ProductsSynced: 3, OrdersSynced: 4, Success: true},
				{TenantID: uuid.New(), TenantName: "Dormant Shop", Success: false, Error: "admin api unavailable"},
			},
		},
	}
	handler := TriggerSync(sweeper, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopify/sync", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sweeper.calls)

	data := decodeData(t, rec)
	results, ok := data["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, second["success"])
	assert.Equal(t, "admin api unavailable", second["error"])
}

func TestTriggerSyncFailure(t *testing.T) {
	handler := TriggerSync(&stubSweeper{err: errors.New("db down")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopify/sync", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTriggerSyncServiceUnavailable(t *testing.T) {
	handler := TriggerSync(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopify/sync", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
