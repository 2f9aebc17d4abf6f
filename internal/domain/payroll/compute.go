package payroll

import "github.com/shopspring/decimal"

// ComputeReport turns month aggregates into a payroll report.
//
// Per labour: gross = daily_wage * (day_shifts + night_shifts), then
// the month's advances and the mess+canteen charges come off. Net
// payable may go negative when advances exceed earnings; it is
// reported as-is so the books reconcile. A labour with no wage on
// file earns zero but still appears, since deductions may apply.
func ComputeReport(siteID, siteName, month string, aggs []MonthAggregate) Report {
	report := Report{
		SiteID:     siteID,
		SiteName:   siteName,
		Month:      month,
		Rows:       make([]Row, 0, len(aggs)),
		GrandTotal: decimal.Zero,
	}

	for _, agg := range aggs {
		wage := decimal.Zero
		if agg.DailyWage != nil {
			wage = *agg.DailyWage
		}

		totalShifts := agg.DayShifts + agg.NightShifts
		gross := wage.Mul(decimal.NewFromInt(int64(totalShifts)))
		net := gross.Sub(agg.Advances).Sub(agg.Mess).Sub(agg.Canteen)

		report.Rows = append(report.Rows, Row{
			LabourID:    agg.LabourID,
			LabourName:  agg.LabourName,
			Phone:       agg.Phone,
			BankAccount: agg.BankAccount,
			IFSCCode:    agg.IFSCCode,
			DailyWage:   wage,
			DayShifts:   agg.DayShifts,
			NightShifts: agg.NightShifts,
			TotalShifts: totalShifts,
			GrossWage:   gross,
			Advances:    agg.Advances,
			Mess:        agg.Mess,
			Canteen:     agg.Canteen,
			NetPayable:  net,
		})
		report.GrandTotal = report.GrandTotal.Add(net)
	}

	return report
}

// ComputeSummary derives one labour's month view from its aggregate,
// using the same wage and deduction rules as the site report.
func ComputeSummary(month string, agg MonthAggregate) LabourSummary {
	report := ComputeReport("", "", month, []MonthAggregate{agg})
	return LabourSummary{Month: month, Row: report.Rows[0]}
}

// ExportHeader is the column order of the spreadsheet export.
var ExportHeader = []string{
	"Labour Name", "Phone", "Bank Account", "IFSC Code",
	"Daily Wage", "Day Shifts", "Night Shifts", "Total Shifts",
	"Gross Wage", "Advances", "Mess", "Canteen", "Net Payable",
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// BuildExportRows flattens a report into spreadsheet cells, ending
// with a TOTAL row whose net-payable cell carries the report's grand
// total rather than a recomputed sum.
func BuildExportRows(report Report) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.Rows)+1)

	totalDay, totalNight, totalShifts := 0, 0, 0
	totalGross, totalAdvances := decimal.Zero, decimal.Zero
	totalMess, totalCanteen := decimal.Zero, decimal.Zero

	for _, r := range report.Rows {
		rows = append(rows, []interface{}{
			r.LabourName,
			r.Phone,
			derefOr(r.BankAccount, ""),
			derefOr(r.IFSCCode, ""),
			r.DailyWage.InexactFloat64(),
			r.DayShifts,
			r.NightShifts,
			r.TotalShifts,
			r.GrossWage.InexactFloat64(),
			r.Advances.InexactFloat64(),
			r.Mess.InexactFloat64(),
			r.Canteen.InexactFloat64(),
			r.NetPayable.InexactFloat64(),
		})
		totalDay += r.DayShifts
		totalNight += r.NightShifts
		totalShifts += r.TotalShifts
		totalGross = totalGross.Add(r.GrossWage)
		totalAdvances = totalAdvances.Add(r.Advances)
		totalMess = totalMess.Add(r.Mess)
		totalCanteen = totalCanteen.Add(r.Canteen)
	}

	rows = append(rows, []interface{}{
		"TOTAL", "", "", "", "",
		totalDay,
		totalNight,
		totalShifts,
		totalGross.InexactFloat64(),
		totalAdvances.InexactFloat64(),
		totalMess.InexactFloat64(),
		totalCanteen.InexactFloat64(),
		report.GrandTotal.InexactFloat64(),
	})
	return rows
}
