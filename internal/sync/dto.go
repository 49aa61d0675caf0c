package sync

import "github.com/google/uuid"

// TenantSweepResult reports one tenant's outcome from a sweep run.
type TenantSweepResult struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	TenantName      string    `json:"tenant_name"`
	ProductsSynced  int       `json:"products_synced"`
	OrdersSynced    int       `json:"orders_synced"`
	CustomersSynced int       `json:"customers_synced"`
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
}

// SweepReport aggregates results across all tenants in one run.
type SweepReport struct {
	Results []TenantSweepResult `json:"results"`
}
