package labour

import "context"

type Filter struct {
	SiteID     *string
	Search     string
	ActiveOnly bool
}

type LabourRepository interface {
	Create(ctx context.Context, l Labour) (Labour, error)
	GetByID(ctx context.Context, id string) (Labour, error)

	// GetByPhoneAndSite is the write-time duplicate check; returns nil
	// when no active labour matches.
	GetByPhoneAndSite(ctx context.Context, phone string, siteID string) (*Labour, error)

	// List returns labours matching the filter ordered by name. Search
	// matches name, phone, bank account or IFSC.
	List(ctx context.Context, filter Filter) ([]Labour, error)

	// ActiveBySite returns active labours for a site ordered by name,
	// the iteration domain for attendance marking.
	ActiveBySite(ctx context.Context, siteID string) ([]Labour, error)

	Update(ctx context.Context, l Labour) error
	SetActive(ctx context.Context, id string, active bool) error

	// HasHistory reports whether any attendance, payment or expense row
	// references the labour.
	HasHistory(ctx context.Context, id string) (bool, error)

	Delete(ctx context.Context, id string) error
}
