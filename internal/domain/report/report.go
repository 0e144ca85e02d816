package report

import (
	"context"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

// WorkerRow is one line of the roster report.
type WorkerRow struct {
	ID           string  `json:"id"`
	DNI          string  `json:"dni"`
	Names        string  `json:"nombres"`
	Surnames     string  `json:"apellidos"`
	Email        *string `json:"email,omitempty"`
	Estado       string  `json:"estado"`
	AreaName     string  `json:"nombre_area"`
	ScheduleName *string `json:"nombre_turno,omitempty"`
}

// AttendanceRow is one line of the detailed attendance report.
type AttendanceRow struct {
	DNI         string  `json:"dni"`
	WorkerName  string  `json:"trabajador"`
	AreaName    string  `json:"nombre_area"`
	Date        string  `json:"fecha"`
	CheckIn     *string `json:"hora_entrada,omitempty"`
	CheckOut    *string `json:"hora_salida,omitempty"`
	EntryStatus string  `json:"estado_entrada"`
	ExitStatus  *string `json:"estado_salida,omitempty"`
}

// LatenessRow is one line of the lateness ranking, worst offenders
// first.
type LatenessRow struct {
	DNI            string `json:"dni"`
	WorkerName     string `json:"trabajador"`
	AreaName       string `json:"nombre_area"`
	ScheduledEntry string `json:"hora_entrada_esperada"`
	Date           string `json:"fecha"`
	CheckIn        string `json:"hora_entrada_real"`
	LateMinutes    int    `json:"minutos_tardanza"`
}

// MonthlySummaryRow aggregates one active worker's month.
type MonthlySummaryRow struct {
	DNI        string `json:"dni"`
	WorkerName string `json:"trabajador"`
	AreaName   string `json:"nombre_area"`
	DaysWorked int    `json:"dias_trabajados"`
	TotalLate  int    `json:"total_tardanzas"`
	EarlyExits int    `json:"salidas_temprano"`
}

// AreaSummaryRow is one area's lateness share over a date range.
type AreaSummaryRow struct {
	AreaName        string  `json:"nombre_area"`
	TotalWorkers    int     `json:"total_trabajadores"`
	TotalRecords    int     `json:"total_registros"`
	LatenessPercent float64 `json:"porcentaje_tardanzas"`
}

// RangeFilter is the plain date-range filter shared by the lateness and
// per-area reports.
type RangeFilter struct {
	StartDate string `json:"fecha_inicio"`
	EndDate   string `json:"fecha_fin"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must not be before fecha_inicio",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthFilter selects the month for the monthly summary.
type MonthFilter struct {
	Year  int `json:"anio"`
	Month int `json:"mes"`
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "anio",
			Message: "anio must be a four-digit year",
		})
	}
	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "mes",
			Message: "mes must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	StartDate string  `json:"fecha_inicio"`
	EndDate   string  `json:"fecha_fin"`
	WorkerID  *string `json:"trabajador_id,omitempty"`
	AreaID    *string `json:"area_id,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must not be before fecha_inicio",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Repository interface {
	ListWorkers(ctx context.Context) ([]WorkerRow, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceRow, error)
	ListLateness(ctx context.Context, filter RangeFilter) ([]LatenessRow, error)
	MonthlySummary(ctx context.Context, filter MonthFilter) ([]MonthlySummaryRow, error)
	AreaSummary(ctx context.Context, filter RangeFilter) ([]AreaSummaryRow, error)
}

type Service interface {
	Workers(ctx context.Context) ([]WorkerRow, error)
	Attendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceRow, error)
	Lateness(ctx context.Context, filter RangeFilter) ([]LatenessRow, error)
	Monthly(ctx context.Context, filter MonthFilter) ([]MonthlySummaryRow, error)
	Areas(ctx context.Context, filter RangeFilter) ([]AreaSummaryRow, error)
}
