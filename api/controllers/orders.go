package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/internal/orders"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// OrdersLister is the read surface the orders listing endpoint needs.
type OrdersLister interface {
	List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Order, int64, error)
}

// ListOrders serves the tenant's orders newest first.
func ListOrders(repo OrdersLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
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
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders"))
			return
		}

		responses.WriteSuccess(w, newListPayload(orders.FromModels(rows), page, total))
	}
}
