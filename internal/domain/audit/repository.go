package audit

import (
	"context"
	"time"
)

type Filter struct {
	SiteID *string
	Action string
	Limit  int
}

type AuditRepository interface {
	Create(ctx context.Context, e Entry) error

	// List returns entries newest first, capped by Filter.Limit
	// (default 100).
	List(ctx context.Context, filter Filter) ([]Entry, error)

	// ArchiveBefore moves entries older than the cutoff into the
	// archive table and returns how many rows moved.
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
