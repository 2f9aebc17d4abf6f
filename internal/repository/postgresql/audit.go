package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepositoryImpl) Create(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (user_id, username, action, site_id, details)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, e.UserID, e.Username, e.Action, e.SiteID, e.Details); err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, username, action, site_id, details, created_at
		FROM audit_logs
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.SiteID != nil {
		args = append(args, *filter.SiteID)
		query += fmt.Sprintf(" AND site_id = $%d", len(args))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Action, &e.SiteID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ArchiveBefore implements audit.AuditRepository.
func (r *auditRepositoryImpl) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Move in one statement so a crash between copy and delete cannot
	// duplicate rows.
	query := `
		WITH moved AS (
			DELETE FROM audit_logs
			WHERE created_at < $1
			RETURNING id, user_id, username, action, site_id, details, created_at
		)
		INSERT INTO audit_logs_archive (id, user_id, username, action, site_id, details, created_at)
		SELECT id, user_id, username, action, site_id, details, created_at FROM moved
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to archive audit entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
