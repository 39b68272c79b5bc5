package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
)

// AdminTokenHeader carries the shared admin token.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards the shop-side endpoints with a shared token. An
// empty configured token disables the admin surface entirely.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				handlers.RespondError(w, http.StatusForbidden, "admin API is disabled")
				return
			}
			provided := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
