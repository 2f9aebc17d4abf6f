package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// MetricsForAllSites returns one row per site (active or not) for
	// the given day, with payroll and advance sums over
	// [monthStart, dayEnd).
	MetricsForAllSites(ctx context.Context, day, monthStart, dayEnd time.Time) ([]MetricsRow, error)

	// MetricsForSite is the single-site variant of MetricsForAllSites.
	MetricsForSite(ctx context.Context, siteID string, day, monthStart, dayEnd time.Time) (MetricsRow, error)

	// DaySnapshotForSite returns the present and shift counts for one
	// site on a single day, used for day-over-day deltas.
	DaySnapshotForSite(ctx context.Context, siteID string, day time.Time) (DaySnapshot, error)
}
