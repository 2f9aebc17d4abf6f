// Package period provides calendar-month arithmetic shared by the payroll
// and dashboard aggregators. All intervals are half-open [Start, Next).
package period

import (
	"fmt"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(key string) (Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", key, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// OfDay returns the month containing t.
func OfDay(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Start is the first day of the month at midnight UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next is the first day of the following month. AddDate handles the
// December rollover and variable month lengths.
func (m Month) Next() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether the date falls inside [Start, Next).
func (m Month) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(m.Start()) && d.Before(m.Next())
}

// Key renders the month back to "YYYY-MM".
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// DayStart truncates t to midnight UTC, the canonical form for
// attendance dates.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
