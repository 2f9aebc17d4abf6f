package auth

import "github.com/sitekhata/labour-backend-go/internal/domain/user"

// Actor is the authenticated principal extracted from the access
// token, passed to services for authorization and audit attribution.
type Actor struct {
	UserID   string
	Username string
	Role     user.Role
	SiteID   *string
}

// CanAccessSite reports whether the actor may operate on the site.
// Admins reach every site; managers only their own.
func (a Actor) CanAccessSite(siteID string) bool {
	if a.Role == user.RoleAdmin {
		return true
	}
	return a.SiteID != nil && *a.SiteID == siteID
}
