package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/domain/dashboard"
	"github.com/sitekhata/labour-backend-go/internal/pkg/period"
)

type Service interface {
	// Overview builds the all-sites dashboard for the day containing
	// now. The evaluation instant is a parameter so date boundaries
	// are testable.
	Overview(ctx context.Context, now time.Time) (dashboard.Overview, error)

	// SiteDetail builds one site's card plus day-over-day deltas.
	SiteDetail(ctx context.Context, siteID string, now time.Time) (dashboard.SiteDetail, error)
}

type ServiceImpl struct {
	dashboard.DashboardRepository
	loc *time.Location
}

// NewService takes the deployment zone used for the delayed-marking
// cutoff comparison.
func NewService(dashboardRepository dashboard.DashboardRepository, loc *time.Location) Service {
	return &ServiceImpl{
		DashboardRepository: dashboardRepository,
		loc:                 loc,
	}
}

func windows(now time.Time) (day, monthStart, dayEnd time.Time) {
	day = period.DayStart(now)
	monthStart = period.OfDay(now).Start()
	dayEnd = day.AddDate(0, 0, 1)
	return day, monthStart, dayEnd
}

// Overview implements Service.
func (s *ServiceImpl) Overview(ctx context.Context, now time.Time) (dashboard.Overview, error) {
	day, monthStart, dayEnd := windows(now)

	rows, err := s.DashboardRepository.MetricsForAllSites(ctx, day, monthStart, dayEnd)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to load site metrics: %w", err)
	}

	cards := make([]dashboard.SiteCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, dashboard.BuildCard(row, s.loc))
	}

	return dashboard.BuildOverview(day, cards), nil
}

// SiteDetail implements Service.
func (s *ServiceImpl) SiteDetail(ctx context.Context, siteID string, now time.Time) (dashboard.SiteDetail, error) {
	day, monthStart, dayEnd := windows(now)

	row, err := s.DashboardRepository.MetricsForSite(ctx, siteID, day, monthStart, dayEnd)
	if err != nil {
		return dashboard.SiteDetail{}, err
	}
	card := dashboard.BuildCard(row, s.loc)

	yesterday, err := s.DashboardRepository.DaySnapshotForSite(ctx, siteID, day.AddDate(0, 0, -1))
	if err != nil {
		return dashboard.SiteDetail{}, fmt.Errorf("failed to load yesterday snapshot: %w", err)
	}

	today := dashboard.DaySnapshot{
		Present:            row.PresentToday,
		Shifts:             row.ShiftsToday,
		TotalActiveWorkers: row.TotalActiveWorkers,
	}

	return dashboard.SiteDetail{
		Card:      card,
		Yesterday: yesterday,
		Delta:     dashboard.BuildDelta(today, yesterday),
	}, nil
}
