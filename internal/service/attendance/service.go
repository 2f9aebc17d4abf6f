package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitekhata/labour-backend-go/internal/domain/attendance"
	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/pkg/period"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type Service interface {
	// BulkMark records or re-marks attendance for a set of labours on
	// one date. Identical re-marks produce no change entries.
	BulkMark(ctx context.Context, actor auth.Actor, siteID string, req attendance.BulkMarkRequest) (attendance.MarkResult, error)

	// Sheet returns the marking sheet for a site and date: every
	// active labour with their current flags, unmarked ones absent.
	Sheet(ctx context.Context, siteID string, date time.Time) ([]attendance.RecordResponse, error)

	// MonthForLabour returns one labour's records inside a month.
	MonthForLabour(ctx context.Context, labourID, siteID, month string) ([]attendance.RecordResponse, error)
}

type ServiceImpl struct {
	attendance.AttendanceRepository
	labour.LabourRepository
	audit.AuditRepository
}

func NewService(attendanceRepository attendance.AttendanceRepository, labourRepository labour.LabourRepository, auditRepository audit.AuditRepository) Service {
	return &ServiceImpl{
		AttendanceRepository: attendanceRepository,
		LabourRepository:     labourRepository,
		AuditRepository:      auditRepository,
	}
}

// BulkMark implements Service.
func (s *ServiceImpl) BulkMark(ctx context.Context, actor auth.Actor, siteID string, req attendance.BulkMarkRequest) (attendance.MarkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResult{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	date = period.DayStart(date)
	if date.After(period.DayStart(time.Now().UTC())) {
		return attendance.MarkResult{}, attendance.ErrFutureDate
	}

	// Marks only apply to the site's own active roster.
	active, err := s.LabourRepository.ActiveBySite(ctx, siteID)
	if err != nil {
		return attendance.MarkResult{}, fmt.Errorf("failed to load active labours: %w", err)
	}
	roster := make(map[string]string, len(active))
	for _, l := range active {
		roster[l.ID] = l.Name
	}

	// Entries run outside a shared transaction: a unique-violation
	// retry needs a clean connection state, and the (labour, date)
	// constraint is the correctness guarantee here, not locking.
	result := attendance.MarkResult{Date: req.Date, Changes: []attendance.Change{}}
	for _, entry := range req.Entries {
		name, ok := roster[entry.LabourID]
		if !ok {
			return attendance.MarkResult{}, attendance.ErrLabourNotAtSite
		}

		change, err := s.markOne(ctx, siteID, date, entry, name)
		if err != nil {
			return attendance.MarkResult{}, err
		}
		if change != nil {
			result.Changes = append(result.Changes, *change)
		}
	}

	if len(result.Changes) > 0 {
		details, err := json.Marshal(result.Changes)
		if err != nil {
			return attendance.MarkResult{}, fmt.Errorf("failed to encode change log: %w", err)
		}
		err = s.AuditRepository.Create(ctx, audit.Entry{
			UserID:   &actor.UserID,
			Username: actor.Username,
			Action:   audit.ActionAttendanceMark,
			SiteID:   &siteID,
			Details:  details,
		})
		if err != nil {
			return attendance.MarkResult{}, err
		}
	}

	result.ChangedCount = len(result.Changes)
	return result, nil
}

// markOne applies one entry. A concurrent insert racing on the
// (labour, date) unique key is retried once as an update.
func (s *ServiceImpl) markOne(ctx context.Context, siteID string, date time.Time, entry attendance.MarkEntry, labourName string) (*attendance.Change, error) {
	existing, err := s.AttendanceRepository.GetByLabourAndDate(ctx, entry.LabourID, date)
	if err != nil {
		return nil, err
	}

	change, needed := attendance.DiffMark(existing, entry.LabourID, labourName, entry.WorkedDay, entry.WorkedNight)
	if !needed {
		return nil, nil
	}

	if existing != nil {
		if err := s.AttendanceRepository.UpdateFlags(ctx, existing.ID, entry.WorkedDay, entry.WorkedNight); err != nil {
			return nil, err
		}
		return &change, nil
	}

	_, err = s.AttendanceRepository.Create(ctx, attendance.Record{
		LabourID:    entry.LabourID,
		SiteID:      siteID,
		Date:        date,
		WorkedDay:   entry.WorkedDay,
		WorkedNight: entry.WorkedNight,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Someone else inserted this (labour, date) first; re-read
			// and update in place instead.
			raced, rerr := s.AttendanceRepository.GetByLabourAndDate(ctx, entry.LabourID, date)
			if rerr != nil {
				return nil, rerr
			}
			if raced == nil {
				return nil, err
			}
			rechange, needed := attendance.DiffMark(raced, entry.LabourID, labourName, entry.WorkedDay, entry.WorkedNight)
			if !needed {
				return nil, nil
			}
			if err := s.AttendanceRepository.UpdateFlags(ctx, raced.ID, entry.WorkedDay, entry.WorkedNight); err != nil {
				return nil, err
			}
			return &rechange, nil
		}
		return nil, err
	}
	return &change, nil
}

// Sheet implements Service.
func (s *ServiceImpl) Sheet(ctx context.Context, siteID string, date time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.AttendanceRepository.ListBySiteAndDate(ctx, siteID, period.DayStart(date))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// MonthForLabour implements Service.
func (s *ServiceImpl) MonthForLabour(ctx context.Context, labourID, siteID, month string) ([]attendance.RecordResponse, error) {
	m, err := period.ParseMonth(month)
	if err != nil {
		return []attendance.RecordResponse{}, nil
	}

	records, err := s.AttendanceRepository.ListByLabourRange(ctx, labourID, siteID, m.Start(), m.Next())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
