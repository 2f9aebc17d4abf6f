package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sitekhata/labour-backend-go/internal/domain/payment"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, labour_id, site_id, amount, date, remark, created_at`

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (labour_id, site_id, amount, date, remark)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	var created payment.Payment
	err := q.QueryRow(ctx, query, p.LabourID, p.SiteID, p.Amount, p.Date, p.Remark).Scan(
		&created.ID, &created.LabourID, &created.SiteID, &created.Amount,
		&created.Date, &created.Remark, &created.CreatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p payment.Payment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.LabourID, &p.SiteID, &p.Amount, &p.Date, &p.Remark, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment by id: %w", err)
	}
	return p, nil
}

// ListByLabourRange implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByLabourRange(ctx context.Context, labourID string, from, to time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE labour_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, labourID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by labour: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.LabourID, &p.SiteID, &p.Amount, &p.Date, &p.Remark, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ListBySiteRange implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListBySiteRange(ctx context.Context, siteID string, from, to time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.labour_id, p.site_id, p.amount, p.date, p.remark, p.created_at, l.name
		FROM payments p
		JOIN labours l ON l.id = p.labour_id
		WHERE p.site_id = $1 AND p.date >= $2 AND p.date < $3
		ORDER BY p.date DESC, p.created_at DESC
	`

	rows, err := q.Query(ctx, query, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by site: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.LabourID, &p.SiteID, &p.Amount, &p.Date, &p.Remark, &p.CreatedAt, &p.LabourName); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SumByLabourRange implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SumByLabourRange(ctx context.Context, labourID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE labour_id = $1 AND date >= $2 AND date < $3
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, labourID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return sum, nil
}

// Update implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Update(ctx context.Context, p payment.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET amount = $2, date = $3, remark = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Amount, p.Date, p.Remark)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
