package cron

import (
	"context"
	"fmt"

	"github.com/storepulse/storepulse-backend/internal/sync"
)

// SweepJobName identifies the Shopify sweep in logs and metrics.
const SweepJobName = "shopify-sweep"

type sweeper interface {
	SweepAll(ctx context.Context) (*sync.SweepReport, error)
}

// SweepJob refreshes every tenant's Shopify mirror on the worker cadence.
type SweepJob struct {
	svc sweeper
}

// NewSweepJob builds the sweep job.
func NewSweepJob(svc sweeper) (*SweepJob, error) {
	if svc == nil {
		return nil, fmt.Errorf("sync service required")
	}
	return &SweepJob{svc: svc}, nil
}

// Name implements Job.
func (j *SweepJob) Name() string { return SweepJobName }

// Run implements Job. Per-tenant failures are reported inside the sweep
// results; the job itself fails only when no sweep could run at all, so one
// broken tenant never marks the whole cycle failed.
func (j *SweepJob) Run(ctx context.Context) error {
	report, err := j.svc.SweepAll(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range report.Results {
		if !result.Success {
			failed++
		}
	}
	if failed > 0 && failed == len(report.Results) {
		return fmt.Errorf("all %d tenants failed to sync", failed)
	}
	return nil
}
