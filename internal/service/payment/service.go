package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/domain/payment"
	"github.com/sitekhata/labour-backend-go/internal/pkg/period"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type Service interface {
	Create(ctx context.Context, actor auth.Actor, req payment.CreatePaymentRequest) (payment.PaymentResponse, error)

	// ListByLabour returns one labour's advances inside a month.
	ListByLabour(ctx context.Context, labourID, month string) ([]payment.PaymentResponse, error)

	// ListBySite returns a site's advances inside a month.
	ListBySite(ctx context.Context, siteID, month string) ([]payment.PaymentResponse, error)

	// Update corrects an advance's amount, date or remark in place.
	Update(ctx context.Context, actor auth.Actor, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error)

	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type ServiceImpl struct {
	payment.PaymentRepository
	labour.LabourRepository
	audit.AuditRepository
}

func NewService(paymentRepository payment.PaymentRepository, labourRepository labour.LabourRepository, auditRepository audit.AuditRepository) Service {
	return &ServiceImpl{
		PaymentRepository: paymentRepository,
		LabourRepository:  labourRepository,
		AuditRepository:   auditRepository,
	}
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, actor auth.Actor, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	date = period.DayStart(date)
	if date.After(period.DayStart(time.Now().UTC())) {
		return payment.PaymentResponse{}, payment.ErrFutureDate
	}

	labourData, err := s.LabourRepository.GetByID(ctx, req.LabourID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if !actor.CanAccessSite(labourData.SiteID) {
		return payment.PaymentResponse{}, labour.ErrLabourNotFound
	}

	created, err := s.PaymentRepository.Create(ctx, payment.Payment{
		LabourID: req.LabourID,
		SiteID:   labourData.SiteID,
		Amount:   req.ParsedAmount(),
		Date:     date,
		Remark:   req.Remark,
	})
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	s.recordAudit(ctx, actor, audit.ActionPaymentCreate, labourData.SiteID, map[string]interface{}{
		"payment_id": created.ID,
		"labour_id":  created.LabourID,
		"amount":     created.Amount,
		"date":       req.Date,
	})

	created.LabourName = &labourData.Name
	return payment.ToResponse(created), nil
}

// ListByLabour implements Service.
func (s *ServiceImpl) ListByLabour(ctx context.Context, labourID, month string) ([]payment.PaymentResponse, error) {
	m, err := period.ParseMonth(month)
	if err != nil {
		return []payment.PaymentResponse{}, nil
	}

	payments, err := s.PaymentRepository.ListByLabourRange(ctx, labourID, m.Start(), m.Next())
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

// ListBySite implements Service.
func (s *ServiceImpl) ListBySite(ctx context.Context, siteID, month string) ([]payment.PaymentResponse, error) {
	m, err := period.ParseMonth(month)
	if err != nil {
		return []payment.PaymentResponse{}, nil
	}

	payments, err := s.PaymentRepository.ListBySiteRange(ctx, siteID, m.Start(), m.Next())
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, actor auth.Actor, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	existing, err := s.PaymentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if !actor.CanAccessSite(existing.SiteID) {
		return payment.PaymentResponse{}, payment.ErrPaymentNotFound
	}

	if req.Amount != nil {
		amount, _ := validator.ParseAmount(*req.Amount)
		existing.Amount = amount
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		date = period.DayStart(date)
		if date.After(period.DayStart(time.Now().UTC())) {
			return payment.PaymentResponse{}, payment.ErrFutureDate
		}
		existing.Date = date
	}
	if req.Remark != nil {
		existing.Remark = req.Remark
	}

	if err := s.PaymentRepository.Update(ctx, existing); err != nil {
		return payment.PaymentResponse{}, err
	}

	s.recordAudit(ctx, actor, audit.ActionPaymentUpdate, existing.SiteID, map[string]interface{}{
		"payment_id": existing.ID,
		"labour_id":  existing.LabourID,
		"amount":     existing.Amount,
		"date":       existing.Date.Format("2006-01-02"),
	})

	return payment.ToResponse(existing), nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, actor auth.Actor, id string) error {
	existing, err := s.PaymentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccessSite(existing.SiteID) {
		return payment.ErrPaymentNotFound
	}

	if err := s.PaymentRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(ctx, actor, audit.ActionPaymentDelete, existing.SiteID, map[string]interface{}{
		"payment_id": existing.ID,
		"labour_id":  existing.LabourID,
		"amount":     existing.Amount,
	})
	return nil
}

func (s *ServiceImpl) recordAudit(ctx context.Context, actor auth.Actor, action, siteID string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		return
	}
	_ = s.AuditRepository.Create(ctx, audit.Entry{
		UserID:   &actor.UserID,
		Username: actor.Username,
		Action:   action,
		SiteID:   &siteID,
		Details:  payload,
	})
}

func toResponses(payments []payment.Payment) []payment.PaymentResponse {
	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses
}
