package middleware

import (
	"net/http"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireDirectivo requires the DIRECTIVO role
func RequireDirectivo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrDirectivoAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrDirectivoAccessRequired)
			return
		}

		if user.Role(roleStr) != user.RoleDirectivo {
			response.HandleError(w, user.ErrDirectivoAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
