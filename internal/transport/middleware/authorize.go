package middleware

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/petcare-basedata/internal/authz"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/pkg/ctxutil"
)

// Require rejects requests whose principal may not perform op: 401 without
// a principal, 403 otherwise.
func Require(op authz.Operation, kind string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var principal *domain.Principal
			if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
				principal = &p
			}

			err := authz.Authorize(principal, op, authz.Resource{Kind: kind})
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			default:
				writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
			}
		})
	}
}
