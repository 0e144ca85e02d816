package report

import (
	"context"
	"testing"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	workers    []domain.WorkerRow
	attendance []domain.AttendanceRow
	lateness   []domain.LatenessRow
	monthly    []domain.MonthlySummaryRow
	areas      []domain.AreaSummaryRow

	lastRange domain.RangeFilter
	lastMonth domain.MonthFilter
	calls     int
}

func (f *fakeReportRepo) ListWorkers(ctx context.Context) ([]domain.WorkerRow, error) {
	f.calls++
	return f.workers, nil
}

func (f *fakeReportRepo) ListAttendance(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRow, error) {
	f.calls++
	return f.attendance, nil
}

func (f *fakeReportRepo) ListLateness(ctx context.Context, filter domain.RangeFilter) ([]domain.LatenessRow, error) {
	f.calls++
	f.lastRange = filter
	return f.lateness, nil
}

func (f *fakeReportRepo) MonthlySummary(ctx context.Context, filter domain.MonthFilter) ([]domain.MonthlySummaryRow, error) {
	f.calls++
	f.lastMonth = filter
	return f.monthly, nil
}

func (f *fakeReportRepo) AreaSummary(ctx context.Context, filter domain.RangeFilter) ([]domain.AreaSummaryRow, error) {
	f.calls++
	f.lastRange = filter
	return f.areas, nil
}

func TestReportService_Lateness(t *testing.T) {
	repo := &fakeReportRepo{
		lateness: []domain.LatenessRow{
			{DNI: "12345678", WorkerName: "Ana Quispe", AreaName: "Produccion", ScheduledEntry: "08:00:00", Date: "2025-03-10", CheckIn: "08:27:00", LateMinutes: 12},
			{DNI: "87654321", WorkerName: "Luis Rojas", AreaName: "Almacen", ScheduledEntry: "08:00:00", Date: "2025-03-11", CheckIn: "08:18:00", LateMinutes: 3},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.Lateness(context.Background(), domain.RangeFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 12, rows[0].LateMinutes)
	assert.Equal(t, "2025-03-01", repo.lastRange.StartDate)
	assert.Equal(t, "2025-03-31", repo.lastRange.EndDate)
}

func TestReportService_Lateness_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.RangeFilter
		field  string
	}{
		{
			name:   "malformed start date",
			filter: domain.RangeFilter{StartDate: "10-03-2025", EndDate: "2025-03-31"},
			field:  "fecha_inicio",
		},
		{
			name:   "missing end date",
			filter: domain.RangeFilter{StartDate: "2025-03-01"},
			field:  "fecha_fin",
		},
		{
			name:   "end before start",
			filter: domain.RangeFilter{StartDate: "2025-03-31", EndDate: "2025-03-01"},
			field:  "fecha_fin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReportRepo{}
			svc := NewReportService(repo)

			_, err := svc.Lateness(context.Background(), tt.filter)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
			assert.Zero(t, repo.calls, "repository must not be hit on invalid input")
		})
	}
}

func TestReportService_Monthly(t *testing.T) {
	repo := &fakeReportRepo{
		monthly: []domain.MonthlySummaryRow{
			{DNI: "12345678", WorkerName: "Ana Quispe", AreaName: "Produccion", DaysWorked: 20, TotalLate: 2, EarlyExits: 1},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.Monthly(context.Background(), domain.MonthFilter{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20, rows[0].DaysWorked)
	assert.Equal(t, domain.MonthFilter{Year: 2025, Month: 3}, repo.lastMonth)
}

func TestReportService_Monthly_InvalidFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.MonthFilter
		field  string
	}{
		{name: "zero month", filter: domain.MonthFilter{Year: 2025, Month: 0}, field: "mes"},
		{name: "month thirteen", filter: domain.MonthFilter{Year: 2025, Month: 13}, field: "mes"},
		{name: "missing year", filter: domain.MonthFilter{Month: 3}, field: "anio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReportRepo{}
			svc := NewReportService(repo)

			_, err := svc.Monthly(context.Background(), tt.filter)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestReportService_Areas_EmptyResultIsNotNil(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	rows, err := svc.Areas(context.Background(), domain.RangeFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestReportService_Areas(t *testing.T) {
	repo := &fakeReportRepo{
		areas: []domain.AreaSummaryRow{
			{AreaName: "Produccion", TotalWorkers: 8, TotalRecords: 160, LatenessPercent: 12.5},
			{AreaName: "Almacen", TotalWorkers: 3, TotalRecords: 60, LatenessPercent: 5},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.Areas(context.Background(), domain.RangeFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 12.5, rows[0].LatenessPercent, 0.001)
}
