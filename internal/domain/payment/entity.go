package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a cash advance handed to a labour, deducted from that
// month's payroll.
type Payment struct {
	ID        string
	LabourID  string
	SiteID    string
	Amount    decimal.Decimal
	Date      time.Time
	Remark    *string
	CreatedAt time.Time

	LabourName *string
}
