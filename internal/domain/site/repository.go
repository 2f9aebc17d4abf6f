package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)

	// List returns all sites ordered by name. activeOnly restricts to
	// sites with is_active = true.
	List(ctx context.Context, activeOnly bool) ([]Site, error)

	Update(ctx context.Context, s Site) error
	SetActive(ctx context.Context, id string, active bool) error

	// HasDependents reports whether any labour or user row references
	// the site.
	HasDependents(ctx context.Context, id string) (bool, error)

	Delete(ctx context.Context, id string) error
}
