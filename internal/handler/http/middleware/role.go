package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/user"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
)

func roleFromClaim(v string) user.Role {
	return user.Role(v)
}

// AdminOnly restricts a route to admin accounts.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || roleFromClaim(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOnly restricts a route to manager accounts with a site
// assignment.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || roleFromClaim(role) != user.RoleManager {
			response.Forbidden(w, "Manager access required")
			return
		}

		siteID, ok := claims["site_id"].(string)
		if !ok || siteID == "" {
			response.HandleError(w, user.ErrManagerSiteRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
