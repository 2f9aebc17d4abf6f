package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)

	// ListByLabourRange returns advances for one labour inside
	// [from, to), newest first.
	ListByLabourRange(ctx context.Context, labourID string, from, to time.Time) ([]Payment, error)

	// ListBySiteRange returns advances for a site inside [from, to)
	// with labour names, newest first.
	ListBySiteRange(ctx context.Context, siteID string, from, to time.Time) ([]Payment, error)

	// SumByLabourRange totals advances for one labour inside [from, to).
	SumByLabourRange(ctx context.Context, labourID string, from, to time.Time) (decimal.Decimal, error)

	Update(ctx context.Context, p Payment) error
	Delete(ctx context.Context, id string) error
}
