package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
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
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromRequest extracts the authenticated principal from the
// verified token claims. Handlers call it after AuthRequired has run.
func ActorFromRequest(r *http.Request) (auth.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Actor{}, auth.ErrInvalidToken
	}

	actor := auth.Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.UserID = v
	}
	if v, ok := claims["username"].(string); ok {
		actor.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = roleFromClaim(v)
	}
	if v, ok := claims["site_id"].(string); ok && v != "" {
		actor.SiteID = &v
	}

	if actor.UserID == "" {
		return auth.Actor{}, auth.ErrInvalidToken
	}
	return actor, nil
}
