package report

import (
	"context"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo domain.Repository
}

func NewReportService(reportRepo domain.Repository) domain.Service {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) Workers(ctx context.Context) ([]domain.WorkerRow, error) {
	rows, err := s.reportRepo.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.WorkerRow{}
	}
	return rows, nil
}

func (s *ReportServiceImpl) Attendance(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.ListAttendance(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.AttendanceRow{}
	}
	return rows, nil
}

func (s *ReportServiceImpl) Lateness(ctx context.Context, filter domain.RangeFilter) ([]domain.LatenessRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.ListLateness(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.LatenessRow{}
	}
	return rows, nil
}

func (s *ReportServiceImpl) Monthly(ctx context.Context, filter domain.MonthFilter) ([]domain.MonthlySummaryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.MonthlySummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.MonthlySummaryRow{}
	}
	return rows, nil
}

func (s *ReportServiceImpl) Areas(ctx context.Context, filter domain.RangeFilter) ([]domain.AreaSummaryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.AreaSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.AreaSummaryRow{}
	}
	return rows, nil
}
