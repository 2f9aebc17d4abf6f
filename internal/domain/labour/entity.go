package labour

import (
	"time"

	"github.com/shopspring/decimal"
)

// Labour is a site worker. DailyWage is nullable: a labour without a
// wage on file earns zero in payroll rather than failing the report.
type Labour struct {
	ID         string
	SiteID     string
	GatePassID *string

	Name  string
	Phone string

	// Document scans stored on disk; paths only.
	PhotoPath         *string
	IDFrontPath       *string
	IDBackPath        *string
	GatePassFrontPath *string
	GatePassBackPath  *string

	BankAccount *string
	IFSCCode    *string
	DailyWage   *decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by joined queries.
	SiteName *string
}
