package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/talentiq/talentiq-backend-go/internal/domain/auth"
	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
)

// RequireHR allows only HR users through.
func RequireHR(next http.Handler) http.Handler {
	return requireRole(user.RoleHR, user.ErrHRAccessRequired, next)
}

// RequireAdmin allows only Admin users through.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(user.RoleAdmin, user.ErrAdminAccessRequired, next)
}

func requireRole(role user.Role, denied error, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, r, auth.ErrInvalidToken)
			return
		}
		if got, ok := claims["role"].(string); !ok || got != string(role) {
			response.HandleError(w, r, denied)
			return
		}
		next.ServeHTTP(w, r)
	})
}
