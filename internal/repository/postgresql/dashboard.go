package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/dashboard"
	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// metricsQuery gathers one row per site: active worker count, today's
// presence and shifts, the latest marking instant, and gross payroll
// plus advances over the month-to-date window.
const metricsQuery = `
	SELECT s.id, s.name,
		(SELECT username FROM users WHERE site_id = s.id AND role = 'manager' LIMIT 1),
		COALESCE(w.total, 0),
		COALESCE(t.present, 0),
		COALESCE(t.shifts, 0),
		t.last_marked_at,
		COALESCE(p.gross, 0),
		COALESCE(adv.total, 0)
	FROM sites s
	LEFT JOIN (
		SELECT site_id, COUNT(*) AS total
		FROM labours
		WHERE is_active = true
		GROUP BY site_id
	) w ON w.site_id = s.id
	LEFT JOIN (
		SELECT site_id,
			COUNT(*) FILTER (WHERE worked_day OR worked_night) AS present,
			SUM(worked_day::int + worked_night::int) AS shifts,
			MAX(marked_at) AS last_marked_at
		FROM attendances
		WHERE date = $1
		GROUP BY site_id
	) t ON t.site_id = s.id
	LEFT JOIN (
		SELECT a.site_id, SUM(COALESCE(l.daily_wage, 0) * (a.worked_day::int + a.worked_night::int)) AS gross
		FROM attendances a
		JOIN labours l ON l.id = a.labour_id
		WHERE a.date >= $2 AND a.date < $3
		GROUP BY a.site_id
	) p ON p.site_id = s.id
	LEFT JOIN (
		SELECT site_id, SUM(amount) AS total
		FROM payments
		WHERE date >= $2 AND date < $3
		GROUP BY site_id
	) adv ON adv.site_id = s.id
`

func scanMetricsRow(row pgx.Row) (dashboard.MetricsRow, error) {
	var m dashboard.MetricsRow
	err := row.Scan(
		&m.SiteID, &m.SiteName, &m.ManagerName,
		&m.TotalActiveWorkers, &m.PresentToday, &m.ShiftsToday, &m.LastMarkedAt,
		&m.PayrollMTD, &m.AdvancesMTD,
	)
	return m, err
}

// MetricsForAllSites implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) MetricsForAllSites(ctx context.Context, day, monthStart, dayEnd time.Time) ([]dashboard.MetricsRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, metricsQuery+` ORDER BY s.name`, day, monthStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query site metrics: %w", err)
	}
	defer rows.Close()

	var metrics []dashboard.MetricsRow
	for rows.Next() {
		var m dashboard.MetricsRow
		if err := rows.Scan(
			&m.SiteID, &m.SiteName, &m.ManagerName,
			&m.TotalActiveWorkers, &m.PresentToday, &m.ShiftsToday, &m.LastMarkedAt,
			&m.PayrollMTD, &m.AdvancesMTD,
		); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// MetricsForSite implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) MetricsForSite(ctx context.Context, siteID string, day, monthStart, dayEnd time.Time) (dashboard.MetricsRow, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMetricsRow(q.QueryRow(ctx, metricsQuery+` WHERE s.id = $4`, day, monthStart, dayEnd, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dashboard.MetricsRow{}, site.ErrSiteNotFound
		}
		return dashboard.MetricsRow{}, fmt.Errorf("failed to query metrics for site: %w", err)
	}
	return m, nil
}

// DaySnapshotForSite implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) DaySnapshotForSite(ctx context.Context, siteID string, day time.Time) (dashboard.DaySnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM labours WHERE site_id = $1 AND is_active = true),
			COUNT(*) FILTER (WHERE worked_day OR worked_night),
			COALESCE(SUM(worked_day::int + worked_night::int), 0)
		FROM attendances
		WHERE site_id = $1 AND date = $2
	`

	var snap dashboard.DaySnapshot
	err := q.QueryRow(ctx, query, siteID, day).Scan(&snap.TotalActiveWorkers, &snap.Present, &snap.Shifts)
	if err != nil {
		return dashboard.DaySnapshot{}, fmt.Errorf("failed to query day snapshot: %w", err)
	}
	return snap, nil
}
