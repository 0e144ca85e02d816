package dashboard

import (
	"context"
	"time"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo domain.Repository
}

func NewDashboardService(dashboardRepo domain.Repository) domain.Service {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

func (s *DashboardServiceImpl) GetMetrics(ctx context.Context, day time.Time) (domain.Metrics, error) {
	m, err := s.dashboardRepo.GetMetrics(ctx, day)
	if err != nil {
		return domain.Metrics{}, err
	}
	if m.LatestScans == nil {
		m.LatestScans = []domain.Scan{}
	}
	return m, nil
}
