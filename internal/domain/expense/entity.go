package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense holds one labour's mess and canteen charges for a month.
// One row per (labour, site, month); saving again overwrites.
type Expense struct {
	ID            string
	LabourID      string
	SiteID        string
	Month         string // "YYYY-MM"
	MessAmount    decimal.Decimal
	CanteenAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	LabourName *string
}

// Total is the combined deduction applied in payroll.
func (e Expense) Total() decimal.Decimal {
	return e.MessAmount.Add(e.CanteenAmount)
}
