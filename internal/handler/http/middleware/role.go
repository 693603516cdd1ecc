package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAnyRole passes when the session holds at least one of the given
// roles. An unreadable or empty role claim fails closed.
func RequireAnyRole(roles ...session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			sess := jwt.SessionFromClaims(claims)
			if !sess.Roles.HasAny(roles...) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireElevated restricts a route to the sessions allowed to edit other
// employees' records.
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		sess := jwt.SessionFromClaims(claims)
		if !sess.Roles.HasAny(
			session.RoleSuperAdmin,
			session.RolePeopleAdmin,
			session.RolePeopleManager,
			session.RoleLeaveAdmin,
			session.RoleAttendanceAdmin,
		) {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
