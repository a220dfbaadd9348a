package middleware

import (
	"net/http"

	"github.com/sellkit/listing-assistant-api/internal/domain"
)

// AdminOnly rejects requests whose token does not carry the admin role.
func AdminOnly() func(http.Handler) http.Handler {
	return requireRoles(domain.RoleAdmin)
}

// AllRoles admits any authenticated user.
func AllRoles() func(http.Handler) http.Handler {
	return requireRoles(domain.RoleAdmin, domain.RoleUser)
}

func requireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "insufficient privileges", http.StatusForbidden)
		})
	}
}
