package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/domain/payroll"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// MonthAggregates implements payroll.PayrollRepository.
//
// The inner join on the attendance subquery drops labours without any
// record in the window. Advances and expense amounts left-join in and
// default to zero.
func (r *payrollRepositoryImpl) MonthAggregates(ctx context.Context, siteID string, from, to time.Time) ([]payroll.MonthAggregate, error) {
	q := GetQuerier(ctx, r.db)

	monthKey := from.Format("2006-01")

	query := `
		SELECT l.id, l.name, l.phone, l.bank_account, l.ifsc_code, l.daily_wage,
			att.day_shifts, att.night_shifts,
			COALESCE(adv.total, 0),
			COALESCE(e.mess_amount, 0),
			COALESCE(e.canteen_amount, 0)
		FROM labours l
		JOIN (
			SELECT labour_id,
				COUNT(*) FILTER (WHERE worked_day) AS day_shifts,
				COUNT(*) FILTER (WHERE worked_night) AS night_shifts
			FROM attendances
			WHERE site_id = $1 AND date >= $2 AND date < $3
			GROUP BY labour_id
		) att ON att.labour_id = l.id
		LEFT JOIN (
			SELECT labour_id, SUM(amount) AS total
			FROM payments
			WHERE site_id = $1 AND date >= $2 AND date < $3
			GROUP BY labour_id
		) adv ON adv.labour_id = l.id
		LEFT JOIN expenses e ON e.labour_id = l.id AND e.month = $4
		WHERE l.site_id = $1 AND l.is_active = true
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, siteID, from, to, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query month aggregates: %w", err)
	}
	defer rows.Close()

	var aggs []payroll.MonthAggregate
	for rows.Next() {
		var agg payroll.MonthAggregate
		if err := rows.Scan(
			&agg.LabourID, &agg.LabourName, &agg.Phone, &agg.BankAccount, &agg.IFSCCode, &agg.DailyWage,
			&agg.DayShifts, &agg.NightShifts, &agg.Advances, &agg.Mess, &agg.Canteen,
		); err != nil {
			return nil, err
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}
