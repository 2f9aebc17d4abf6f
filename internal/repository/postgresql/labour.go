package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
)

type labourRepositoryImpl struct {
	db *database.DB
}

func NewLabourRepository(db *database.DB) labour.LabourRepository {
	return &labourRepositoryImpl{db: db}
}

const labourColumns = `id, site_id, gate_pass_id, name, phone,
	photo_path, id_front_path, id_back_path, gate_pass_front_path, gate_pass_back_path,
	bank_account, ifsc_code, daily_wage, is_active, created_at, updated_at`

func scanLabour(row pgx.Row) (labour.Labour, error) {
	var l labour.Labour
	err := row.Scan(
		&l.ID, &l.SiteID, &l.GatePassID, &l.Name, &l.Phone,
		&l.PhotoPath, &l.IDFrontPath, &l.IDBackPath, &l.GatePassFrontPath, &l.GatePassBackPath,
		&l.BankAccount, &l.IFSCCode, &l.DailyWage, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements labour.LabourRepository.
func (r *labourRepositoryImpl) Create(ctx context.Context, newLabour labour.Labour) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO labours (
			site_id, gate_pass_id, name, phone,
			photo_path, id_front_path, id_back_path, gate_pass_front_path, gate_pass_back_path,
			bank_account, ifsc_code, daily_wage
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + labourColumns

	created, err := scanLabour(q.QueryRow(ctx, query,
		newLabour.SiteID, newLabour.GatePassID, newLabour.Name, newLabour.Phone,
		newLabour.PhotoPath, newLabour.IDFrontPath, newLabour.IDBackPath,
		newLabour.GatePassFrontPath, newLabour.GatePassBackPath,
		newLabour.BankAccount, newLabour.IFSCCode, newLabour.DailyWage,
	))
	if err != nil {
		return labour.Labour{}, fmt.Errorf("failed to create labour: %w", err)
	}
	return created, nil
}

// GetByID implements labour.LabourRepository.
func (r *labourRepositoryImpl) GetByID(ctx context.Context, id string) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.site_id, l.gate_pass_id, l.name, l.phone,
			l.photo_path, l.id_front_path, l.id_back_path, l.gate_pass_front_path, l.gate_pass_back_path,
			l.bank_account, l.ifsc_code, l.daily_wage, l.is_active, l.created_at, l.updated_at, s.name
		FROM labours l
		JOIN sites s ON s.id = l.site_id
		WHERE l.id = $1
	`

	var l labour.Labour
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.SiteID, &l.GatePassID, &l.Name, &l.Phone,
		&l.PhotoPath, &l.IDFrontPath, &l.IDBackPath, &l.GatePassFrontPath, &l.GatePassBackPath,
		&l.BankAccount, &l.IFSCCode, &l.DailyWage, &l.IsActive, &l.CreatedAt, &l.UpdatedAt, &l.SiteName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labour.Labour{}, labour.ErrLabourNotFound
		}
		return labour.Labour{}, fmt.Errorf("failed to get labour by id: %w", err)
	}
	return l, nil
}

// GetByPhoneAndSite implements labour.LabourRepository.
func (r *labourRepositoryImpl) GetByPhoneAndSite(ctx context.Context, phone string, siteID string) (*labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourColumns + ` FROM labours WHERE phone = $1 AND site_id = $2`

	l, err := scanLabour(q.QueryRow(ctx, query, phone, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get labour by phone and site: %w", err)
	}
	return &l, nil
}

// List implements labour.LabourRepository.
func (r *labourRepositoryImpl) List(ctx context.Context, filter labour.Filter) ([]labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.site_id, l.gate_pass_id, l.name, l.phone,
			l.photo_path, l.id_front_path, l.id_back_path, l.gate_pass_front_path, l.gate_pass_back_path,
			l.bank_account, l.ifsc_code, l.daily_wage, l.is_active, l.created_at, l.updated_at, s.name
		FROM labours l
		JOIN sites s ON s.id = l.site_id
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.SiteID != nil {
		args = append(args, *filter.SiteID)
		query += fmt.Sprintf(" AND l.site_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (l.name ILIKE $%d OR l.phone ILIKE $%d OR l.bank_account ILIKE $%d OR l.ifsc_code ILIKE $%d)`, n, n, n, n)
	}
	if filter.ActiveOnly {
		query += ` AND l.is_active = true`
	}
	query += ` ORDER BY l.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list labours: %w", err)
	}
	defer rows.Close()

	var labours []labour.Labour
	for rows.Next() {
		var l labour.Labour
		if err := rows.Scan(
			&l.ID, &l.SiteID, &l.GatePassID, &l.Name, &l.Phone,
			&l.PhotoPath, &l.IDFrontPath, &l.IDBackPath, &l.GatePassFrontPath, &l.GatePassBackPath,
			&l.BankAccount, &l.IFSCCode, &l.DailyWage, &l.IsActive, &l.CreatedAt, &l.UpdatedAt, &l.SiteName,
		); err != nil {
			return nil, err
		}
		labours = append(labours, l)
	}
	return labours, rows.Err()
}

// ActiveBySite implements labour.LabourRepository.
func (r *labourRepositoryImpl) ActiveBySite(ctx context.Context, siteID string) ([]labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourColumns + ` FROM labours WHERE site_id = $1 AND is_active = true ORDER BY name`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active labours: %w", err)
	}
	defer rows.Close()

	var labours []labour.Labour
	for rows.Next() {
		var l labour.Labour
		if err := rows.Scan(
			&l.ID, &l.SiteID, &l.GatePassID, &l.Name, &l.Phone,
			&l.PhotoPath, &l.IDFrontPath, &l.IDBackPath, &l.GatePassFrontPath, &l.GatePassBackPath,
			&l.BankAccount, &l.IFSCCode, &l.DailyWage, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		labours = append(labours, l)
	}
	return labours, rows.Err()
}

// Update implements labour.LabourRepository.
func (r *labourRepositoryImpl) Update(ctx context.Context, l labour.Labour) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE labours
		SET site_id = $1, gate_pass_id = $2, name = $3, phone = $4,
			photo_path = $5, id_front_path = $6, id_back_path = $7,
			gate_pass_front_path = $8, gate_pass_back_path = $9,
			bank_account = $10, ifsc_code = $11, daily_wage = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		l.SiteID, l.GatePassID, l.Name, l.Phone,
		l.PhotoPath, l.IDFrontPath, l.IDBackPath, l.GatePassFrontPath, l.GatePassBackPath,
		l.BankAccount, l.IFSCCode, l.DailyWage, l.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labour.ErrLabourNotFound
		}
		return fmt.Errorf("failed to update labour: %w", err)
	}
	return nil
}

// SetActive implements labour.LabourRepository.
func (r *labourRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE labours SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set labour active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return labour.ErrLabourNotFound
	}
	return nil
}

// HasHistory implements labour.LabourRepository.
func (r *labourRepositoryImpl) HasHistory(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (SELECT 1 FROM attendances WHERE labour_id = $1)
			OR EXISTS (SELECT 1 FROM payments WHERE labour_id = $1)
			OR EXISTS (SELECT 1 FROM expenses WHERE labour_id = $1)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check labour history: %w", err)
	}
	return exists, nil
}

// Delete implements labour.LabourRepository.
func (r *labourRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM labours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete labour: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return labour.ErrLabourNotFound
	}
	return nil
}
