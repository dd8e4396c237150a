package middleware

import (
	"net/http"

	"go-library-management/internal/domain/entity"
	"go-library-management/pkg/response"
)

// RequireRole creates a middleware that admits callers holding ANY of the
// allowed roles. The role set comes from context (set by AuthMiddleware from
// JWT claims); users may hold several roles at once.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := GetRolesFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range roles {
				for _, allowedRole := range allowedRoles {
					if role == allowedRole {
						allowed = true
						break
					}
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireLibrarian is a convenience middleware for librarian-only endpoints.
func RequireLibrarian(next http.Handler) http.Handler {
	return RequireRole(entity.RoleLibrarian)(next)
}

// RequireUser is a convenience middleware for user-only endpoints.
func RequireUser(next http.Handler) http.Handler {
	return RequireRole(entity.RoleUser)(next)
}

// RequireUserOrLibrarian is a convenience middleware for endpoints shared by
// users and librarians (loan and ticket reads/patches).
func RequireUserOrLibrarian(next http.Handler) http.Handler {
	return RequireRole(entity.RoleUser, entity.RoleLibrarian)(next)
}
