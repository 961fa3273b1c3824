package middleware

import (
	"net/http"

	"github.com/swipehome/api/internal/domain"
)

// RequireKind rejects requests whose authenticated identity is not of the
// given kind. Must run after Auth.
func RequireKind(kind domain.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if claims.Kind != kind {
				writeJSONError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
