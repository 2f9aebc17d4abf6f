package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/domain/expense"
	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
)

type Service interface {
	// Upsert records a labour's mess and canteen charges for a month,
	// overwriting the existing row when one exists.
	Upsert(ctx context.Context, actor auth.Actor, req expense.UpsertExpenseRequest) (expense.ExpenseResponse, error)

	ListBySiteAndMonth(ctx context.Context, siteID, month string) ([]expense.ExpenseResponse, error)
	ListByLabour(ctx context.Context, labourID string) ([]expense.ExpenseResponse, error)
}

type ServiceImpl struct {
	expense.ExpenseRepository
	labour.LabourRepository
	audit.AuditRepository
}

func NewService(expenseRepository expense.ExpenseRepository, labourRepository labour.LabourRepository, auditRepository audit.AuditRepository) Service {
	return &ServiceImpl{
		ExpenseRepository: expenseRepository,
		LabourRepository:  labourRepository,
		AuditRepository:   auditRepository,
	}
}

// Upsert implements Service.
func (s *ServiceImpl) Upsert(ctx context.Context, actor auth.Actor, req expense.UpsertExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	labourData, err := s.LabourRepository.GetByID(ctx, req.LabourID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if !actor.CanAccessSite(labourData.SiteID) {
		return expense.ExpenseResponse{}, labour.ErrLabourNotFound
	}

	saved, err := s.upsertRow(ctx, labourData.SiteID, req)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	s.recordAudit(ctx, actor, labourData.SiteID, saved)

	saved.LabourName = &labourData.Name
	return expense.ToResponse(saved), nil
}

// upsertRow branches on a key lookup and falls back to update when a
// concurrent insert wins the (labour, month) unique constraint.
func (s *ServiceImpl) upsertRow(ctx context.Context, siteID string, req expense.UpsertExpenseRequest) (expense.Expense, error) {
	existing, err := s.ExpenseRepository.GetByLabourAndMonth(ctx, req.LabourID, req.Month)
	if err != nil {
		return expense.Expense{}, err
	}

	if existing != nil {
		existing.MessAmount = req.ParsedMess()
		existing.CanteenAmount = req.ParsedCanteen()
		if err := s.ExpenseRepository.UpdateAmounts(ctx, existing.ID, *existing); err != nil {
			return expense.Expense{}, err
		}
		return *existing, nil
	}

	created, err := s.ExpenseRepository.Create(ctx, expense.Expense{
		LabourID:      req.LabourID,
		SiteID:        siteID,
		Month:         req.Month,
		MessAmount:    req.ParsedMess(),
		CanteenAmount: req.ParsedCanteen(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			raced, rerr := s.ExpenseRepository.GetByLabourAndMonth(ctx, req.LabourID, req.Month)
			if rerr != nil {
				return expense.Expense{}, rerr
			}
			if raced == nil {
				return expense.Expense{}, err
			}
			raced.MessAmount = req.ParsedMess()
			raced.CanteenAmount = req.ParsedCanteen()
			if err := s.ExpenseRepository.UpdateAmounts(ctx, raced.ID, *raced); err != nil {
				return expense.Expense{}, err
			}
			return *raced, nil
		}
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

// ListBySiteAndMonth implements Service.
func (s *ServiceImpl) ListBySiteAndMonth(ctx context.Context, siteID, month string) ([]expense.ExpenseResponse, error) {
	expenses, err := s.ExpenseRepository.ListBySiteAndMonth(ctx, siteID, month)
	if err != nil {
		return nil, err
	}
	return toResponses(expenses), nil
}

// ListByLabour implements Service.
func (s *ServiceImpl) ListByLabour(ctx context.Context, labourID string) ([]expense.ExpenseResponse, error) {
	expenses, err := s.ExpenseRepository.ListByLabour(ctx, labourID)
	if err != nil {
		return nil, err
	}
	return toResponses(expenses), nil
}

func (s *ServiceImpl) recordAudit(ctx context.Context, actor auth.Actor, siteID string, saved expense.Expense) {
	details, err := json.Marshal(map[string]interface{}{
		"labour_id":      saved.LabourID,
		"month":          saved.Month,
		"mess_amount":    saved.MessAmount,
		"canteen_amount": saved.CanteenAmount,
	})
	if err != nil {
		return
	}
	_ = s.AuditRepository.Create(ctx, audit.Entry{
		UserID:   &actor.UserID,
		Username: actor.Username,
		Action:   audit.ActionExpenseUpsert,
		SiteID:   &siteID,
		Details:  details,
	})
}

func toResponses(expenses []expense.Expense) []expense.ExpenseResponse {
	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, expense.ToResponse(e))
	}
	return responses
}
