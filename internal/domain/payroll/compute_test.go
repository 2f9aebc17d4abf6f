package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wage(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestComputeReportSingleLabour(t *testing.T) {
	aggs := []MonthAggregate{
		{
			LabourID:    "lab-1",
			LabourName:  "Ramesh Kumar",
			Phone:       "9876543210",
			DailyWage:   wage(500),
			DayShifts:   10,
			NightShifts: 3,
			Advances:    decimal.NewFromInt(1200),
			Mess:        decimal.NewFromInt(200),
			Canteen:     decimal.NewFromInt(100),
		},
	}

	report := ComputeReport("site-1", "Tower A", "2024-03", aggs)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, 13, row.TotalShifts)
	assert.True(t, row.GrossWage.Equal(decimal.NewFromInt(6500)), "gross = %s", row.GrossWage)
	assert.True(t, row.NetPayable.Equal(decimal.NewFromInt(5000)), "net = %s", row.NetPayable)
	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(5000)))
}

func TestComputeReportNegativeNetPayable(t *testing.T) {
	aggs := []MonthAggregate{
		{
			LabourID:   "lab-1",
			LabourName: "Suresh",
			DailyWage:  wage(400),
			DayShifts:  2,
			Advances:   decimal.NewFromInt(2000),
		},
	}

	report := ComputeReport("site-1", "Tower A", "2024-03", aggs)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].NetPayable.Equal(decimal.NewFromInt(-1200)),
		"net should stay negative, got %s", report.Rows[0].NetPayable)
	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(-1200)))
}

func TestComputeReportNilWageEarnsZero(t *testing.T) {
	aggs := []MonthAggregate{
		{
			LabourID:   "lab-1",
			LabourName: "Mahesh",
			DayShifts:  15,
			Advances:   decimal.NewFromInt(500),
			Mess:       decimal.NewFromInt(100),
		},
	}

	report := ComputeReport("site-1", "Tower A", "2024-03", aggs)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.True(t, row.GrossWage.IsZero())
	assert.True(t, row.NetPayable.Equal(decimal.NewFromInt(-600)))
}

func TestComputeReportGrandTotalEqualsRowSum(t *testing.T) {
	aggs := []MonthAggregate{
		{LabourID: "lab-1", LabourName: "A", DailyWage: wage(500), DayShifts: 20, Advances: decimal.NewFromInt(3000), Mess: decimal.NewFromInt(250)},
		{LabourID: "lab-2", LabourName: "B", DailyWage: wage(650), DayShifts: 18, NightShifts: 4, Canteen: decimal.NewFromInt(150)},
		{LabourID: "lab-3", LabourName: "C", DailyWage: wage(450), NightShifts: 10, Advances: decimal.NewFromInt(5500)},
	}

	report := ComputeReport("site-1", "Tower A", "2024-03", aggs)

	sum := decimal.Zero
	for _, row := range report.Rows {
		sum = sum.Add(row.NetPayable)
	}
	assert.True(t, report.GrandTotal.Equal(sum), "grand total %s != row sum %s", report.GrandTotal, sum)
}

func TestComputeReportEmptyAggregates(t *testing.T) {
	report := ComputeReport("site-1", "Tower A", "2024-03", nil)

	assert.Empty(t, report.Rows)
	assert.True(t, report.GrandTotal.IsZero())
}

func TestBuildExportRowsEndsWithTotal(t *testing.T) {
	aggs := []MonthAggregate{
		{LabourID: "lab-1", LabourName: "Ramesh", Phone: "9876543210", DailyWage: wage(500), DayShifts: 10, Advances: decimal.NewFromInt(1000)},
		{LabourID: "lab-2", LabourName: "Suresh", Phone: "9876500000", DailyWage: wage(600), NightShifts: 5, Mess: decimal.NewFromInt(200)},
	}
	report := ComputeReport("site-1", "Tower A", "2024-03", aggs)

	rows := BuildExportRows(report)
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Len(t, row, len(ExportHeader))
	}

	total := rows[2]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, 10, total[5])
	assert.Equal(t, 5, total[6])
	assert.Equal(t, 15, total[7])
	assert.Equal(t, report.GrandTotal.InexactFloat64(), total[len(ExportHeader)-1])
}

func TestComputeSummaryMatchesReportRow(t *testing.T) {
	agg := MonthAggregate{
		LabourID:    "lab-1",
		LabourName:  "Ramesh Kumar",
		Phone:       "9876543210",
		DailyWage:   wage(500),
		DayShifts:   10,
		NightShifts: 3,
		Advances:    decimal.NewFromInt(1200),
		Mess:        decimal.NewFromInt(200),
		Canteen:     decimal.NewFromInt(100),
	}

	summary := ComputeSummary("2024-03", agg)

	assert.Equal(t, "2024-03", summary.Month)
	assert.Equal(t, 13, summary.TotalShifts)
	assert.True(t, summary.NetPayable.Equal(decimal.NewFromInt(5000)), "net = %s", summary.NetPayable)

	report := ComputeReport("site-1", "Tower A", "2024-03", []MonthAggregate{agg})
	assert.Equal(t, report.Rows[0], summary.Row)
}
