package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/auth"
	"github.com/nexhr/hr-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose context carries no verified access
// token. jwtauth.Verifier must run earlier in the chain to populate it.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if kind, ok := claims["type"].(string); !ok || kind != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
