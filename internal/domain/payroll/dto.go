package payroll

import "github.com/shopspring/decimal"

// MonthAggregate is one labour's pre-aggregated numbers for a month,
// produced by the repository join. Only labours with at least one
// attendance record in the month appear. Mess and Canteen come from
// the labour's monthly expense row and are zero when no row exists.
type MonthAggregate struct {
	LabourID    string
	LabourName  string
	Phone       string
	BankAccount *string
	IFSCCode    *string
	DailyWage   *decimal.Decimal
	DayShifts   int
	NightShifts int
	Advances    decimal.Decimal
	Mess        decimal.Decimal
	Canteen     decimal.Decimal
}

// Row is one labour's computed payroll line.
type Row struct {
	LabourID    string          `json:"labour_id"`
	LabourName  string          `json:"labour_name"`
	Phone       string          `json:"phone"`
	BankAccount *string         `json:"bank_account,omitempty"`
	IFSCCode    *string         `json:"ifsc_code,omitempty"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	DayShifts   int             `json:"day_shifts"`
	NightShifts int             `json:"night_shifts"`
	TotalShifts int             `json:"total_shifts"`
	GrossWage   decimal.Decimal `json:"gross_wage"`
	Advances    decimal.Decimal `json:"advances"`
	Mess        decimal.Decimal `json:"mess"`
	Canteen     decimal.Decimal `json:"canteen"`
	NetPayable  decimal.Decimal `json:"net_payable"`
}

// Report is the full payroll statement for one site and month.
type Report struct {
	SiteID     string          `json:"site_id"`
	SiteName   string          `json:"site_name"`
	Month      string          `json:"month"`
	Rows       []Row           `json:"rows"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// LabourSummary is one labour's month view: the payroll line plus the
// month key, computed with the same formulas as the site report.
type LabourSummary struct {
	Month string `json:"month"`
	Row
}
