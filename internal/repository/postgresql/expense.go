package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/expense"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `id, labour_id, site_id, month, mess_amount, canteen_amount, created_at, updated_at`

// GetByLabourAndMonth implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByLabourAndMonth(ctx context.Context, labourID, month string) (*expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE labour_id = $1 AND month = $2`

	var e expense.Expense
	err := q.QueryRow(ctx, query, labourID, month).Scan(
		&e.ID, &e.LabourID, &e.SiteID, &e.Month,
		&e.MessAmount, &e.CanteenAmount, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &e, nil
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (labour_id, site_id, month, mess_amount, canteen_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + expenseColumns

	var created expense.Expense
	err := q.QueryRow(ctx, query, e.LabourID, e.SiteID, e.Month, e.MessAmount, e.CanteenAmount).Scan(
		&created.ID, &created.LabourID, &created.SiteID, &created.Month,
		&created.MessAmount, &created.CanteenAmount, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

// UpdateAmounts implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) UpdateAmounts(ctx context.Context, id string, e expense.Expense) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE expenses SET mess_amount = $1, canteen_amount = $2, updated_at = NOW() WHERE id = $3`,
		e.MessAmount, e.CanteenAmount, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense amounts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

// ListBySiteAndMonth implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListBySiteAndMonth(ctx context.Context, siteID, month string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.labour_id, e.site_id, e.month, e.mess_amount, e.canteen_amount, e.created_at, e.updated_at, l.name
		FROM expenses e
		JOIN labours l ON l.id = e.labour_id
		WHERE e.site_id = $1 AND e.month = $2
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, siteID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by site and month: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.LabourID, &e.SiteID, &e.Month,
			&e.MessAmount, &e.CanteenAmount, &e.CreatedAt, &e.UpdatedAt, &e.LabourName,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// ListByLabour implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByLabour(ctx context.Context, labourID string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE labour_id = $1 ORDER BY month DESC`

	rows, err := q.Query(ctx, query, labourID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by labour: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.LabourID, &e.SiteID, &e.Month,
			&e.MessAmount, &e.CanteenAmount, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
