package dashboard

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Attendance below this percentage flags a WARNING status.
	attendanceWarnPercent = 70.0

	// Advance ratio above this percentage raises the exposure alert.
	advanceAlertPercent = 40.0

	// Marking after this hour of the local day counts as delayed.
	cutoffHour = 22
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func ratioPercent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return round1(part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// isDelayed reports whether the last marking instant falls after the
// 22:00 cutoff of its own local calendar day. Stored instants are
// UTC; the comparison happens in the deployment zone.
func isDelayed(lastMarkedAt *time.Time, loc *time.Location) bool {
	if lastMarkedAt == nil {
		return false
	}
	local := lastMarkedAt.In(loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), cutoffHour, 0, 0, 0, loc)
	return local.After(cutoff)
}

// BuildCard computes one site's dashboard card from its raw metrics.
// Sites with no active workers are INACTIVE and raise no alerts.
func BuildCard(row MetricsRow, loc *time.Location) SiteCard {
	card := SiteCard{
		SiteID:             row.SiteID,
		SiteName:           row.SiteName,
		ManagerName:        row.ManagerName,
		TotalActiveWorkers: row.TotalActiveWorkers,
		PresentToday:       row.PresentToday,
		AttendancePercent:  percent(row.PresentToday, row.TotalActiveWorkers),
		Delayed:            isDelayed(row.LastMarkedAt, loc),
		LastMarkedAt:       row.LastMarkedAt,
		PayrollMTD:         row.PayrollMTD,
		AdvancesMTD:        row.AdvancesMTD,
		AdvanceRatio:       ratioPercent(row.AdvancesMTD, row.PayrollMTD),
		Alerts:             []string{},
	}

	switch {
	case row.TotalActiveWorkers == 0:
		card.Status = StatusInactive
	case row.PresentToday == 0:
		card.Status = StatusCritical
	case card.Delayed:
		card.Status = StatusDelayed
	case card.AttendancePercent < attendanceWarnPercent:
		card.Status = StatusWarning
	default:
		card.Status = StatusHealthy
	}

	if row.TotalActiveWorkers > 0 {
		if row.PresentToday == 0 {
			card.Alerts = append(card.Alerts, "no attendance marked today")
		}
		if card.Delayed {
			card.Alerts = append(card.Alerts, "attendance delayed")
		}
		if card.AdvanceRatio > advanceAlertPercent {
			card.Alerts = append(card.Alerts, "advance exceeds safe limit")
		}
	}

	return card
}

// BuildOverview rolls per-site cards up into the admin dashboard.
func BuildOverview(day time.Time, cards []SiteCard) Overview {
	overview := Overview{
		Date:                 day.Format("2006-01-02"),
		TotalSites:           len(cards),
		AttendanceExceptions: []string{},
		Sites:                cards,
	}

	totalWorkers, totalPresent := 0, 0
	totalPayroll, totalAdvances := decimal.Zero, decimal.Zero

	for _, card := range cards {
		if card.TotalActiveWorkers > 0 {
			overview.ActiveSites++
			if card.AttendancePercent < attendanceWarnPercent {
				overview.AttendanceExceptions = append(overview.AttendanceExceptions, card.SiteName)
			}
		}
		totalWorkers += card.TotalActiveWorkers
		totalPresent += card.PresentToday
		totalPayroll = totalPayroll.Add(card.PayrollMTD)
		totalAdvances = totalAdvances.Add(card.AdvancesMTD)
		overview.AlertCount += len(card.Alerts)
	}

	overview.AttendancePercent = percent(totalPresent, totalWorkers)
	overview.FinancialRisk = FinancialRisk{
		PayrollMTD:  totalPayroll,
		AdvancesMTD: totalAdvances,
		Ratio:       ratioPercent(totalAdvances, totalPayroll),
	}

	return overview
}

// BuildDelta computes the signed day-over-day movement between two
// snapshots. Attendance percentages are recomputed per day with the
// same formula as the card.
func BuildDelta(today, yesterday DaySnapshot) Delta {
	return Delta{
		PresentDiff:    today.Present - yesterday.Present,
		ShiftDiff:      today.Shifts - yesterday.Shifts,
		AttendanceDiff: round1(percent(today.Present, today.TotalActiveWorkers) - percent(yesterday.Present, yesterday.TotalActiveWorkers)),
	}
}
