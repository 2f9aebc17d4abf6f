package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// MonthAggregates returns per-labour shift counts and advance sums
	// for active labours of a site inside [from, to), ordered by
	// labour name. Labours without attendance in the window are
	// excluded.
	MonthAggregates(ctx context.Context, siteID string, from, to time.Time) ([]MonthAggregate, error)
}
