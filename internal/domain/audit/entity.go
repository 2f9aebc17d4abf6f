package audit

import "time"

// Entry is one recorded action in the audit trail. Details carries a
// JSON document describing the change, such as attendance before and
// after states.
type Entry struct {
	ID        string
	UserID    *string
	Username  string
	Action    string
	SiteID    *string
	Details   []byte
	CreatedAt time.Time
}

// Action names recorded by the services.
const (
	ActionLogin          = "auth.login"
	ActionAttendanceMark = "attendance.mark"
	ActionPaymentCreate  = "payment.create"
	ActionPaymentUpdate  = "payment.update"
	ActionPaymentDelete  = "payment.delete"
	ActionExpenseUpsert  = "expense.upsert"
)
