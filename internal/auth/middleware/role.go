package middleware

import (
	"context"
	"net/http"

	"github.com/catmap/backend/internal/auth/service"
	"github.com/catmap/backend/internal/models"
)

// RoleMiddleware validates the access token and checks that the caller's
// role is at least requiredRole. Used for the admin-only cat endpoints.
func RoleMiddleware(tokenGenerator *service.TokenGenerator, requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"authentication required"}`))
				return
			}

			caller, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"invalid or expired token"}`))
				return
			}

			if caller.Role < requiredRole {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"message":"insufficient permissions"}`))
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
