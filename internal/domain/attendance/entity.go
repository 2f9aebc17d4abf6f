package attendance

import "time"

// Record holds one row per (labour, date). Day and night shifts are
// independent flags; a labour on both shifts counts as two shift-units
// in payroll. MarkedAt is the creation instant in UTC, used for the
// delayed-marking cutoff on the dashboard.
type Record struct {
	ID          string
	LabourID    string
	SiteID      string
	Date        time.Time
	WorkedDay   bool
	WorkedNight bool
	Note        *string
	MarkedAt    time.Time
	UpdatedAt   time.Time

	// Populated by joined queries.
	LabourName *string
}

// Present reports whether the record counts as present for its date.
func (r Record) Present() bool {
	return r.WorkedDay || r.WorkedNight
}
