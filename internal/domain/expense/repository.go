package expense

import "context"

type ExpenseRepository interface {
	// GetByLabourAndMonth returns nil when no row exists for the key,
	// the branch point for the upsert flow.
	GetByLabourAndMonth(ctx context.Context, labourID, month string) (*Expense, error)

	Create(ctx context.Context, e Expense) (Expense, error)

	// UpdateAmounts overwrites both amounts on an existing row.
	UpdateAmounts(ctx context.Context, id string, e Expense) error

	// ListBySiteAndMonth returns all labour expense rows for a site
	// and month with labour names, ordered by labour name.
	ListBySiteAndMonth(ctx context.Context, siteID, month string) ([]Expense, error)

	// ListByLabour returns all months recorded for a labour, newest
	// first.
	ListByLabour(ctx context.Context, labourID string) ([]Expense, error)
}
