package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// ListManagers returns manager accounts with their site names.
	ListManagers(ctx context.Context) ([]User, error)

	// ManagerForSite returns the manager assigned to a site, or nil.
	ManagerForSite(ctx context.Context, siteID string) (*User, error)

	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
