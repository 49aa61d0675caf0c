package middleware

import (
	"net/http"

	"github.com/storepulse/storepulse-backend/api/responses"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

// RequireTenant rejects requests whose token carries no tenant binding. It
// runs after Auth on every tenant-scoped route.
func RequireTenant(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if TenantIDFromContext(r.Context()) == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "no tenant associated with credentials"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
