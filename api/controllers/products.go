package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/internal/products"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
)

// ProductsLister is the read surface the products listing endpoint needs.
type ProductsLister interface {
	List(ctx context.Context, tenantID uuid.UUID, search string, page pagination.Params) ([]models.Product, int64, error)
}

// ListProducts serves the tenant-scoped product mirror with search and paging.
func ListProducts(repo ProductsLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products repository unavailable"))
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
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products"))
			return
		}

		responses.WriteSuccess(w, newListPayload(products.FromModels(rows), page, total))
	}
}
