package middleware

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. Tokens
// revoked by logout are refused even while still within their lifetime.
func AuthRequired(ja *jwtauth.JWTAuth, isRevoked func(token string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if isRevoked != nil {
				raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
				if raw != "" && isRevoked(raw) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
