package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// User is an operator account. Managers are bound to a single site;
// admins have SiteID nil.
type User struct {
	ID        string
	Username  string
	Password  string
	Role      Role
	SiteID    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by joined queries for listings.
	SiteName *string
}
