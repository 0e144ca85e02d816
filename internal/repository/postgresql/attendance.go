package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// GetByWorkerAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, trabajador_id, fecha, hora_entrada, hora_salida,
		       minutos_tardanza, estado_entrada, estado_salida, metodo_registro,
		       created_at, updated_at
		FROM registros_asistencia
		WHERE trabajador_id = $1
		  AND fecha = $2::date
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, workerID, date.Format("2006-01-02")).Scan(
		&rec.ID, &rec.WorkerID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.LateMinutes, &rec.EntryStatus, &rec.ExitStatus, &rec.Method,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by worker and date: %w", err)
	}
	return &rec, nil
}

// Create implements attendance.Repository. The unique index over
// (trabajador_id, fecha) turns a concurrent duplicate clock-in into
// attendance.ErrDuplicateScan instead of a second row.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO registros_asistencia (
			trabajador_id, fecha, hora_entrada, minutos_tardanza,
			estado_entrada, metodo_registro
		) VALUES ($1, $2::date, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.WorkerID,
		rec.Date.Format("2006-01-02"),
		rec.CheckIn,
		rec.LateMinutes,
		rec.EntryStatus,
		rec.Method,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrDuplicateScan
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return rec, nil
}

// UpdateCheckout implements attendance.Repository. The hora_salida IS
// NULL guard keeps a racing second clock-out from overwriting the first.
func (a *attendanceRepository) UpdateCheckout(ctx context.Context, id string, checkOut time.Time, status attendance.ExitStatus) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE registros_asistencia
		SET hora_salida = $2, estado_salida = $3, updated_at = NOW()
		WHERE id = $1
		  AND hora_salida IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOut, status)
	if err != nil {
		return fmt.Errorf("failed to update attendance checkout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrDuplicateScan
	}
	return nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.trabajador_id, r.fecha, r.hora_entrada, r.hora_salida,
		       r.minutos_tardanza, r.estado_entrada, r.estado_salida, r.metodo_registro,
		       r.created_at, r.updated_at,
		       t.dni,
		       t.nombres || ' ' || t.apellidos AS nombre_completo,
		       h.nombre_turno
		FROM registros_asistencia r
		INNER JOIN trabajadores t ON t.id = r.trabajador_id
		LEFT JOIN horarios h ON h.id = t.id_horario
		WHERE 1=1
	`
	args := []interface{}{}
	argN := 1

	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND r.fecha >= $%d::date", argN)
		args = append(args, *filter.StartDate)
		argN++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND r.fecha <= $%d::date", argN)
		args = append(args, *filter.EndDate)
		argN++
	}
	if filter.DNI != nil && *filter.DNI != "" {
		query += fmt.Sprintf(" AND t.dni LIKE $%d", argN)
		args = append(args, "%"+*filter.DNI+"%")
		argN++
	}
	if filter.WorkerID != nil {
		query += fmt.Sprintf(" AND r.trabajador_id = $%d", argN)
		args = append(args, *filter.WorkerID)
		argN++
	}

	query += " ORDER BY r.fecha DESC, r.hora_entrada DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.LateMinutes, &rec.EntryStatus, &rec.ExitStatus, &rec.Method,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkerDNI, &rec.WorkerName, &rec.ScheduleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateAbsence implements attendance.Repository. ON CONFLICT DO
// NOTHING keeps the nightly job idempotent against records created in
// the meantime.
func (a *attendanceRepository) CreateAbsence(ctx context.Context, workerID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO registros_asistencia (
			trabajador_id, fecha, minutos_tardanza, estado_entrada, metodo_registro
		) VALUES ($1, $2::date, 0, 'ausente', 'manual')
		ON CONFLICT (trabajador_id, fecha) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, workerID, date.Format("2006-01-02"))
	if err != nil {
		return false, fmt.Errorf("failed to create absence record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
