package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/attendance"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, labour_id, site_id, date, worked_day, worked_night, note, marked_at, updated_at`

// GetByLabourAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByLabourAndDate(ctx context.Context, labourID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE labour_id = $1 AND date = $2`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, labourID, date).Scan(
		&rec.ID, &rec.LabourID, &rec.SiteID, &rec.Date,
		&rec.WorkedDay, &rec.WorkedNight, &rec.Note, &rec.MarkedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (labour_id, site_id, date, worked_day, worked_night, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	var created attendance.Record
	err := q.QueryRow(ctx, query,
		rec.LabourID, rec.SiteID, rec.Date, rec.WorkedDay, rec.WorkedNight, rec.Note,
	).Scan(
		&created.ID, &created.LabourID, &created.SiteID, &created.Date,
		&created.WorkedDay, &created.WorkedNight, &created.Note, &created.MarkedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// UpdateFlags implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateFlags(ctx context.Context, id string, workedDay, workedNight bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE attendances SET worked_day = $1, worked_night = $2, updated_at = NOW() WHERE id = $3`,
		workedDay, workedNight, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// ListBySiteAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.labour_id, a.site_id, a.date, a.worked_day, a.worked_night, a.note, a.marked_at, a.updated_at, l.name
		FROM attendances a
		JOIN labours l ON l.id = a.labour_id
		WHERE a.site_id = $1 AND a.date = $2
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, siteID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by site and date: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows, true)
}

// ListByLabourRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByLabourRange(ctx context.Context, labourID string, siteID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE labour_id = $1 AND site_id = $2 AND date >= $3 AND date < $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, labourID, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by labour range: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows, false)
}

func collectRecords(rows pgx.Rows, withName bool) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		dest := []interface{}{
			&rec.ID, &rec.LabourID, &rec.SiteID, &rec.Date,
			&rec.WorkedDay, &rec.WorkedNight, &rec.Note, &rec.MarkedAt, &rec.UpdatedAt,
		}
		if withName {
			dest = append(dest, &rec.LabourName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
