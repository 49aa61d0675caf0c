package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/internal/customers"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// CustomersLister is the read surface the customers listing endpoint needs.
type CustomersLister interface {
	List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Customer, int64, error)
}

// ListCustomers serves the tenant's customers ordered by lifetime spend.
func ListCustomers(repo CustomersLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers repository unavailable"))
			return
		}

		tenantID, err := tenantFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, search, err := parseListQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, total, err := repo.List(r.Context(), tenantID, search, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list customers"))
			return
		}

		responses.WriteSuccess(w, newListPayload(customers.FromModels(rows), page, total))
	}
}
