package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByLabourAndDate returns nil when no record exists, the branch
	// point for the update-or-insert marking flow.
	GetByLabourAndDate(ctx context.Context, labourID string, date time.Time) (*Record, error)

	Create(ctx context.Context, rec Record) (Record, error)

	// UpdateFlags rewrites the shift flags of an existing record in
	// place and bumps updated_at.
	UpdateFlags(ctx context.Context, id string, workedDay, workedNight bool) error

	// ListBySiteAndDate returns all records for a site on a date with
	// labour names, ordered by labour name.
	ListBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]Record, error)

	// ListByLabourRange returns records for one labour inside
	// [from, to), ordered by date, for the monthly summary calendar.
	ListByLabourRange(ctx context.Context, labourID string, siteID string, from, to time.Time) ([]Record, error)
}
