package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kolkata = time.FixedZone("IST", 5*3600+1800)

func ts(t time.Time) *time.Time { return &t }

func baseRow() MetricsRow {
	return MetricsRow{
		SiteID:             "site-1",
		SiteName:           "Tower A",
		TotalActiveWorkers: 10,
		PresentToday:       8,
		ShiftsToday:        9,
		PayrollMTD:         decimal.NewFromInt(50000),
		AdvancesMTD:        decimal.NewFromInt(10000),
	}
}

func TestBuildCardStatusPrecedence(t *testing.T) {
	// 16:30 UTC = 22:00 IST, one minute later is past the cutoff.
	delayedMark := time.Date(2024, 3, 15, 16, 31, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*MetricsRow)
		want   Status
	}{
		{
			name:   "healthy",
			mutate: func(r *MetricsRow) {},
			want:   StatusHealthy,
		},
		{
			name: "inactive wins over everything",
			mutate: func(r *MetricsRow) {
				r.TotalActiveWorkers = 0
				r.PresentToday = 0
				r.LastMarkedAt = ts(delayedMark)
			},
			want: StatusInactive,
		},
		{
			name: "critical before delayed",
			mutate: func(r *MetricsRow) {
				r.PresentToday = 0
				r.LastMarkedAt = ts(delayedMark)
			},
			want: StatusCritical,
		},
		{
			name: "delayed before warning",
			mutate: func(r *MetricsRow) {
				r.PresentToday = 3
				r.LastMarkedAt = ts(delayedMark)
			},
			want: StatusDelayed,
		},
		{
			name: "warning under seventy percent",
			mutate: func(r *MetricsRow) {
				r.PresentToday = 6
			},
			want: StatusWarning,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			tc.mutate(&row)
			card := BuildCard(row, kolkata)
			assert.Equal(t, tc.want, card.Status)
		})
	}
}

func TestBuildCardZeroWorkersNoDivisionNoAlerts(t *testing.T) {
	row := baseRow()
	row.TotalActiveWorkers = 0
	row.PresentToday = 0

	card := BuildCard(row, kolkata)

	assert.Equal(t, StatusInactive, card.Status)
	assert.Equal(t, 0.0, card.AttendancePercent)
	assert.Empty(t, card.Alerts)
}

func TestBuildCardCriticalAlert(t *testing.T) {
	row := baseRow()
	row.PresentToday = 0

	card := BuildCard(row, kolkata)

	assert.Equal(t, StatusCritical, card.Status)
	assert.Contains(t, card.Alerts, "no attendance marked today")
}

func TestBuildCardAdvanceRatioAlert(t *testing.T) {
	row := baseRow()
	row.AdvancesMTD = decimal.NewFromInt(25000)

	card := BuildCard(row, kolkata)

	assert.Equal(t, 50.0, card.AdvanceRatio)
	assert.Contains(t, card.Alerts, "advance exceeds safe limit")
}

func TestBuildCardAdvanceRatioZeroPayroll(t *testing.T) {
	row := baseRow()
	row.PayrollMTD = decimal.Zero
	row.AdvancesMTD = decimal.NewFromInt(5000)

	card := BuildCard(row, kolkata)

	assert.Equal(t, 0.0, card.AdvanceRatio)
	assert.NotContains(t, card.Alerts, "advance exceeds safe limit")
}

func TestIsDelayedCutoffBothSides(t *testing.T) {
	// 16:30 UTC is exactly 22:00 in IST, which is not yet delayed.
	atCutoff := time.Date(2024, 3, 15, 16, 30, 0, 0, time.UTC)
	pastCutoff := time.Date(2024, 3, 15, 16, 30, 1, 0, time.UTC)

	assert.False(t, isDelayed(&atCutoff, kolkata))
	assert.True(t, isDelayed(&pastCutoff, kolkata))
	assert.False(t, isDelayed(nil, kolkata))

	// The same instants evaluated in UTC sit mid-afternoon.
	assert.False(t, isDelayed(&pastCutoff, time.UTC))
}

func TestBuildCardDelayedMultipleAlerts(t *testing.T) {
	row := baseRow()
	row.PresentToday = 0
	row.AdvancesMTD = decimal.NewFromInt(30000)
	row.LastMarkedAt = ts(time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	card := BuildCard(row, kolkata)

	require.Len(t, card.Alerts, 3)
	assert.Equal(t, StatusCritical, card.Status)
}

func TestBuildOverviewRollup(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	cards := []SiteCard{
		BuildCard(baseRow(), kolkata),
		BuildCard(MetricsRow{
			SiteID:             "site-2",
			SiteName:           "Tower B",
			TotalActiveWorkers: 10,
			PresentToday:       5,
			PayrollMTD:         decimal.NewFromInt(20000),
			AdvancesMTD:        decimal.NewFromInt(10000),
		}, kolkata),
		BuildCard(MetricsRow{SiteID: "site-3", SiteName: "Closed Yard"}, kolkata),
	}

	overview := BuildOverview(day, cards)

	assert.Equal(t, "2024-03-15", overview.Date)
	assert.Equal(t, 3, overview.TotalSites)
	assert.Equal(t, 2, overview.ActiveSites)
	assert.Equal(t, 65.0, overview.AttendancePercent)
	assert.Equal(t, []string{"Tower B"}, overview.AttendanceExceptions)
	assert.True(t, overview.FinancialRisk.PayrollMTD.Equal(decimal.NewFromInt(70000)))
	assert.InDelta(t, 28.6, overview.FinancialRisk.Ratio, 0.01)
	assert.Equal(t, 1, overview.AlertCount)
}

func TestBuildOverviewEmpty(t *testing.T) {
	overview := BuildOverview(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, 0, overview.ActiveSites)
	assert.Equal(t, 0.0, overview.AttendancePercent)
	assert.Equal(t, 0.0, overview.FinancialRisk.Ratio)
}

func TestBuildDelta(t *testing.T) {
	delta := BuildDelta(
		DaySnapshot{Present: 8, Shifts: 10, TotalActiveWorkers: 10},
		DaySnapshot{Present: 9, Shifts: 12, TotalActiveWorkers: 10},
	)

	assert.Equal(t, -1, delta.PresentDiff)
	assert.Equal(t, -2, delta.ShiftDiff)
	assert.Equal(t, -10.0, delta.AttendanceDiff)
}

func TestBuildDeltaZeroWorkersYesterday(t *testing.T) {
	delta := BuildDelta(
		DaySnapshot{Present: 5, Shifts: 5, TotalActiveWorkers: 10},
		DaySnapshot{},
	)

	assert.Equal(t, 5, delta.PresentDiff)
	assert.Equal(t, 50.0, delta.AttendanceDiff)
}
