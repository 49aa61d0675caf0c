package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/api/middleware"
	"github.com/storepulse/storepulse-backend/api/validators"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/pagination"
	"github.com/storepulse/storepulse-backend/pkg/types"
)

const maxSearchLength = 120

// listPayload is the common envelope for paginated listing endpoints.
type listPayload struct {
	Items      any              `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}

func newListPayload(items any, page pagination.Params, total int64) listPayload {
	return listPayload{
		Items: items,
		Pagination: types.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: pagination.Pages(total, page.Limit),
		},
	}
}

// tenantFromRequest resolves the tenant scope seeded by the auth middleware.
func tenantFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.TenantIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "no tenant associated with credentials")
	}
	tenantID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid tenant in credentials")
	}
	return tenantID, nil
}

func parseListQuery(r *http.Request) (pagination.Params, string, error) {
	// non-positive pages floor to 1 in Normalize rather than erroring
	page, err := validators.ParseQueryInt(r, "page", 1, -1_000_000, 1_000_000)
	if err != nil {
		return pagination.Params{}, "", err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, "", err
	}
	search := validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLength)
	return pagination.Normalize(pagination.Params{Page: page, Limit: limit}), search, nil
}
