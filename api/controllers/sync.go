package controllers

import (
	"context"
	"net/http"

	"github.com/storepulse/storepulse-backend/api/responses"
	syncsvc "github.com/storepulse/storepulse-backend/internal/sync"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

// Sweeper runs a full reconciliation pass over every sync-enabled tenant.
type Sweeper interface {
	SweepAll(ctx context.Context) (*syncsvc.SweepReport, error)
}

// TriggerSync runs a sweep on demand and returns the per-tenant report.
// The scheduled worker covers steady state; this endpoint exists for
// backfills and support tooling.
func TriggerSync(svc Sweeper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sync service unavailable"))
			return
		}

		report, err := svc.SweepAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "run sync sweep"))
			return
		}

		responses.WriteSuccess(w, report)
	}
}
