package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sitekhata/labour-backend-go/internal/domain/attendance"
	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/domain/expense"
	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/domain/payment"
	"github.com/sitekhata/labour-backend-go/internal/domain/payroll"
	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/pkg/export"
	"github.com/sitekhata/labour-backend-go/internal/pkg/period"
)

type Service interface {
	// Report computes the payroll statement for a site and month. An
	// unknown site or unparseable month yields an empty report, not an
	// error.
	Report(ctx context.Context, siteID, month string) (payroll.Report, error)

	// Export renders the report as an xlsx workbook and returns the
	// bytes plus a suggested filename.
	Export(ctx context.Context, siteID, month string) (*bytes.Buffer, string, error)

	// LabourSummary computes one labour's month view with the report
	// formulas: shifts, gross, advances, mess/canteen, net payable.
	LabourSummary(ctx context.Context, actor auth.Actor, labourID, month string) (payroll.LabourSummary, error)
}

type ServiceImpl struct {
	payroll.PayrollRepository
	site.SiteRepository
	labour.LabourRepository
	attendance.AttendanceRepository
	payment.PaymentRepository
	expense.ExpenseRepository
}

func NewService(
	payrollRepository payroll.PayrollRepository,
	siteRepository site.SiteRepository,
	labourRepository labour.LabourRepository,
	attendanceRepository attendance.AttendanceRepository,
	paymentRepository payment.PaymentRepository,
	expenseRepository expense.ExpenseRepository,
) Service {
	return &ServiceImpl{
		PayrollRepository:    payrollRepository,
		SiteRepository:       siteRepository,
		LabourRepository:     labourRepository,
		AttendanceRepository: attendanceRepository,
		PaymentRepository:    paymentRepository,
		ExpenseRepository:    expenseRepository,
	}
}

// Report implements Service.
func (s *ServiceImpl) Report(ctx context.Context, siteID, month string) (payroll.Report, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return payroll.ComputeReport(siteID, "", month, nil), nil
		}
		return payroll.Report{}, err
	}

	m, err := period.ParseMonth(month)
	if err != nil {
		return payroll.ComputeReport(siteData.ID, siteData.Name, month, nil), nil
	}

	aggs, err := s.PayrollRepository.MonthAggregates(ctx, siteID, m.Start(), m.Next())
	if err != nil {
		return payroll.Report{}, fmt.Errorf("failed to aggregate payroll: %w", err)
	}

	return payroll.ComputeReport(siteData.ID, siteData.Name, m.Key(), aggs), nil
}

// Export implements Service.
func (s *ServiceImpl) Export(ctx context.Context, siteID, month string) (*bytes.Buffer, string, error) {
	report, err := s.Report(ctx, siteID, month)
	if err != nil {
		return nil, "", err
	}

	buf, err := export.Spreadsheet("Payroll", payroll.ExportHeader, payroll.BuildExportRows(report))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build payroll export: %w", err)
	}

	filename := fmt.Sprintf("payroll-%s-%s.xlsx", report.SiteName, report.Month)
	return buf, filename, nil
}

// LabourSummary implements Service.
func (s *ServiceImpl) LabourSummary(ctx context.Context, actor auth.Actor, labourID, month string) (payroll.LabourSummary, error) {
	labourData, err := s.LabourRepository.GetByID(ctx, labourID)
	if err != nil {
		return payroll.LabourSummary{}, err
	}
	if !actor.CanAccessSite(labourData.SiteID) {
		return payroll.LabourSummary{}, labour.ErrLabourNotFound
	}

	agg := payroll.MonthAggregate{
		LabourID:    labourData.ID,
		LabourName:  labourData.Name,
		Phone:       labourData.Phone,
		BankAccount: labourData.BankAccount,
		IFSCCode:    labourData.IFSCCode,
		DailyWage:   labourData.DailyWage,
	}

	m, err := period.ParseMonth(month)
	if err != nil {
		return payroll.ComputeSummary(month, agg), nil
	}

	records, err := s.AttendanceRepository.ListByLabourRange(ctx, labourID, labourData.SiteID, m.Start(), m.Next())
	if err != nil {
		return payroll.LabourSummary{}, err
	}
	for _, rec := range records {
		if rec.WorkedDay {
			agg.DayShifts++
		}
		if rec.WorkedNight {
			agg.NightShifts++
		}
	}

	agg.Advances, err = s.PaymentRepository.SumByLabourRange(ctx, labourID, m.Start(), m.Next())
	if err != nil {
		return payroll.LabourSummary{}, err
	}

	exp, err := s.ExpenseRepository.GetByLabourAndMonth(ctx, labourID, m.Key())
	if err != nil {
		return payroll.LabourSummary{}, err
	}
	if exp != nil {
		agg.Mess = exp.MessAmount
		agg.Canteen = exp.CanteenAmount
	}

	return payroll.ComputeSummary(m.Key(), agg), nil
}
