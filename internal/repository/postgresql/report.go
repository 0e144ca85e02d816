package postgresql

import (
	"context"
	"fmt"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// ListWorkers implements report.Repository.
func (r *reportRepository) ListWorkers(ctx context.Context) ([]report.WorkerRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.dni, t.nombres, t.apellidos, t.email, t.estado,
		       a.nombre_area, h.nombre_turno
		FROM trabajadores t
		INNER JOIN areas a ON a.id = t.id_area
		LEFT JOIN horarios h ON h.id = t.id_horario
		ORDER BY t.nombres, t.apellidos
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers for report: %w", err)
	}
	defer rows.Close()

	var result []report.WorkerRow
	for rows.Next() {
		var row report.WorkerRow
		if err := rows.Scan(
			&row.ID, &row.DNI, &row.Names, &row.Surnames, &row.Email, &row.Estado,
			&row.AreaName, &row.ScheduleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report worker row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListAttendance implements report.Repository.
func (r *reportRepository) ListAttendance(ctx context.Context, filter report.AttendanceFilter) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.dni, t.nombres || ' ' || t.apellidos, a.nombre_area,
		       to_char(r.fecha, 'YYYY-MM-DD'),
		       to_char(r.hora_entrada, 'HH24:MI:SS'),
		       to_char(r.hora_salida, 'HH24:MI:SS'),
		       r.estado_entrada, r.estado_salida
		FROM registros_asistencia r
		INNER JOIN trabajadores t ON t.id = r.trabajador_id
		INNER JOIN areas a ON a.id = t.id_area
		WHERE r.fecha BETWEEN $1::date AND $2::date
	`
	args := []interface{}{filter.StartDate, filter.EndDate}
	argN := 3

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		query += fmt.Sprintf(" AND t.id = $%d", argN)
		args = append(args, *filter.WorkerID)
		argN++
	}
	if filter.AreaID != nil && *filter.AreaID != "" {
		query += fmt.Sprintf(" AND a.id = $%d", argN)
		args = append(args, *filter.AreaID)
		argN++
	}

	query += " ORDER BY r.fecha, t.nombres"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		if err := rows.Scan(
			&row.DNI, &row.WorkerName, &row.AreaName, &row.Date,
			&row.CheckIn, &row.CheckOut, &row.EntryStatus, &row.ExitStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report attendance row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListLateness implements report.Repository. The persisted
// minutos_tardanza is the ranking key, so the report always agrees with
// what the scan recorded.
func (r *reportRepository) ListLateness(ctx context.Context, filter report.RangeFilter) ([]report.LatenessRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.dni, t.nombres || ' ' || t.apellidos, a.nombre_area,
		       h.hora_entrada::text,
		       to_char(r.fecha, 'YYYY-MM-DD'),
		       to_char(r.hora_entrada, 'HH24:MI:SS'),
		       r.minutos_tardanza
		FROM registros_asistencia r
		INNER JOIN trabajadores t ON t.id = r.trabajador_id
		INNER JOIN areas a ON a.id = t.id_area
		INNER JOIN horarios h ON h.id = t.id_horario
		WHERE r.fecha BETWEEN $1::date AND $2::date
		  AND r.estado_entrada = 'tardanza'
		ORDER BY r.minutos_tardanza DESC
	`

	rows, err := q.Query(ctx, query, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list lateness for report: %w", err)
	}
	defer rows.Close()

	var result []report.LatenessRow
	for rows.Next() {
		var row report.LatenessRow
		if err := rows.Scan(
			&row.DNI, &row.WorkerName, &row.AreaName, &row.ScheduledEntry,
			&row.Date, &row.CheckIn, &row.LateMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lateness row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// MonthlySummary implements report.Repository. The LEFT JOIN keeps
// active workers with zero records in the summary.
func (r *reportRepository) MonthlySummary(ctx context.Context, filter report.MonthFilter) ([]report.MonthlySummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.dni, t.nombres || ' ' || t.apellidos, a.nombre_area,
		       COUNT(r.id),
		       COALESCE(SUM(CASE WHEN r.estado_entrada = 'tardanza' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN r.estado_salida = 'salida_temprano' THEN 1 ELSE 0 END), 0)
		FROM trabajadores t
		INNER JOIN areas a ON a.id = t.id_area
		LEFT JOIN registros_asistencia r ON r.trabajador_id = t.id
			AND EXTRACT(YEAR FROM r.fecha) = $1
			AND EXTRACT(MONTH FROM r.fecha) = $2
		WHERE t.estado = 'activo'
		GROUP BY t.id, t.dni, t.nombres, t.apellidos, a.nombre_area
		ORDER BY t.nombres
	`

	rows, err := q.Query(ctx, query, filter.Year, filter.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}
	defer rows.Close()

	var result []report.MonthlySummaryRow
	for rows.Next() {
		var row report.MonthlySummaryRow
		if err := rows.Scan(
			&row.DNI, &row.WorkerName, &row.AreaName,
			&row.DaysWorked, &row.TotalLate, &row.EarlyExits,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// AreaSummary implements report.Repository.
func (r *reportRepository) AreaSummary(ctx context.Context, filter report.RangeFilter) ([]report.AreaSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.nombre_area,
		       COUNT(DISTINCT t.id),
		       COUNT(r.id),
		       COALESCE(
		           ROUND(
		               SUM(CASE WHEN r.estado_entrada = 'tardanza' THEN 1 ELSE 0 END) * 100.0
		               / NULLIF(COUNT(r.id), 0),
		               2
		           ),
		           0
		       )
		FROM areas a
		INNER JOIN trabajadores t ON t.id_area = a.id
		LEFT JOIN registros_asistencia r ON r.trabajador_id = t.id
			AND r.fecha BETWEEN $1::date AND $2::date
		WHERE t.estado = 'activo'
		GROUP BY a.id, a.nombre_area
		ORDER BY 4 DESC
	`

	rows, err := q.Query(ctx, query, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build area summary: %w", err)
	}
	defer rows.Close()

	var result []report.AreaSummaryRow
	for rows.Next() {
		var row report.AreaSummaryRow
		if err := rows.Scan(
			&row.AreaName, &row.TotalWorkers, &row.TotalRecords, &row.LatenessPercent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan area summary row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
