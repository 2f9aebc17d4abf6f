package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies a site's operational health for the day.
type Status string

const (
	StatusInactive Status = "INACTIVE"
	StatusCritical Status = "CRITICAL"
	StatusDelayed  Status = "DELAYED"
	StatusWarning  Status = "WARNING"
	StatusHealthy  Status = "HEALTHY"
)

// MetricsRow is one site's raw numbers for the evaluation day,
// produced by the repository. PayrollMTD is the gross-pay sum from
// month start through the day; AdvancesMTD covers the same window.
type MetricsRow struct {
	SiteID             string
	SiteName           string
	ManagerName        *string
	TotalActiveWorkers int
	PresentToday       int
	ShiftsToday        int
	LastMarkedAt       *time.Time
	PayrollMTD         decimal.Decimal
	AdvancesMTD        decimal.Decimal
}

// DaySnapshot carries the per-day counts used for day-over-day deltas.
type DaySnapshot struct {
	Present            int
	Shifts             int
	TotalActiveWorkers int
}

// SiteCard is the computed dashboard card for one site.
type SiteCard struct {
	SiteID             string          `json:"site_id"`
	SiteName           string          `json:"site_name"`
	ManagerName        *string         `json:"manager_name,omitempty"`
	TotalActiveWorkers int             `json:"total_active_workers"`
	PresentToday       int             `json:"present_today"`
	AttendancePercent  float64         `json:"attendance_percent"`
	Delayed            bool            `json:"delayed"`
	LastMarkedAt       *time.Time      `json:"last_marked_at,omitempty"`
	PayrollMTD         decimal.Decimal `json:"payroll_mtd"`
	AdvancesMTD        decimal.Decimal `json:"advances_mtd"`
	AdvanceRatio       float64         `json:"advance_ratio"`
	Status             Status          `json:"status"`
	Alerts             []string        `json:"alerts"`
}

// FinancialRisk is the system-wide advance exposure.
type FinancialRisk struct {
	PayrollMTD  decimal.Decimal `json:"payroll_mtd"`
	AdvancesMTD decimal.Decimal `json:"advances_mtd"`
	Ratio       float64         `json:"ratio"`
}

// Overview is the admin dashboard: every site's card plus the rollup.
type Overview struct {
	Date                 string        `json:"date"`
	TotalSites           int           `json:"total_sites"`
	ActiveSites          int           `json:"active_sites"`
	AttendancePercent    float64       `json:"attendance_percent"`
	AttendanceExceptions []string      `json:"attendance_exceptions"`
	FinancialRisk        FinancialRisk `json:"financial_risk"`
	AlertCount           int           `json:"alert_count"`
	Sites                []SiteCard    `json:"sites"`
}

// Delta holds signed day-over-day movements for the detail view.
type Delta struct {
	PresentDiff    int     `json:"present_diff"`
	ShiftDiff      int     `json:"shift_diff"`
	AttendanceDiff float64 `json:"attendance_diff"`
}

// SiteDetail is the single-site dashboard view.
type SiteDetail struct {
	Card      SiteCard    `json:"card"`
	Yesterday DaySnapshot `json:"-"`
	Delta     Delta       `json:"delta"`
}
