package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, nombre_turno, hora_entrada, hora_salida, dias_laborales, tipo, estado, created_at, updated_at`

// scanSchedule reads one horarios row. TIME columns come back as
// strings and are parsed into TimeOfDay; a NULL stays nil.
func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	var entryRaw, exitRaw *string
	if err := row.Scan(
		&s.ID, &s.Name, &entryRaw, &exitRaw, &s.WorkingDaysRaw,
		&s.Type, &s.Estado, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return schedule.Schedule{}, err
	}
	if entryRaw != nil {
		if t, err := schedule.ParseTimeOfDay(*entryRaw); err == nil {
			s.EntryTime = &t
		}
	}
	if exitRaw != nil {
		if t, err := schedule.ParseTimeOfDay(*exitRaw); err == nil {
			s.ExitTime = &t
		}
	}
	return s, nil
}

// GetByWorkerID implements schedule.Repository.
func (r *scheduleRepository) GetByWorkerID(ctx context.Context, workerID string) (*schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.id, h.nombre_turno, h.hora_entrada::text, h.hora_salida::text,
		       h.dias_laborales, h.tipo, h.estado, h.created_at, h.updated_at
		FROM horarios h
		INNER JOIN trabajadores t ON t.id_horario = h.id
		WHERE t.id = $1
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule by worker: %w", err)
	}
	return &s, nil
}

// GetByID implements schedule.Repository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nombre_turno, hora_entrada::text, hora_salida::text,
		       dias_laborales, tipo, estado, created_at, updated_at
		FROM horarios
		WHERE id = $1
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by ID: %w", err)
	}
	return s, nil
}

// List implements schedule.Repository.
func (r *scheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nombre_turno, hora_entrada::text, hora_salida::text,
		       dias_laborales, tipo, estado, created_at, updated_at
		FROM horarios
		ORDER BY nombre_turno
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Create implements schedule.Repository.
func (r *scheduleRepository) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO horarios (nombre_turno, hora_entrada, hora_salida, dias_laborales, tipo, estado)
		VALUES ($1, $2::time, $3::time, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	var entry, exit *string
	if s.EntryTime != nil {
		v := s.EntryTime.String()
		entry = &v
	}
	if s.ExitTime != nil {
		v := s.ExitTime.String()
		exit = &v
	}

	err := q.QueryRow(ctx, query, s.Name, entry, exit, s.WorkingDaysRaw, s.Type, s.Estado).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return s, nil
}

// Update implements schedule.Repository.
func (r *scheduleRepository) Update(ctx context.Context, s schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE horarios
		SET nombre_turno = $2, hora_entrada = $3::time, hora_salida = $4::time,
		    dias_laborales = $5, estado = $6, updated_at = NOW()
		WHERE id = $1
	`

	var entry, exit *string
	if s.EntryTime != nil {
		v := s.EntryTime.String()
		entry = &v
	}
	if s.ExitTime != nil {
		v := s.ExitTime.String()
		exit = &v
	}

	tag, err := q.Exec(ctx, query, s.ID, s.Name, entry, exit, s.WorkingDaysRaw, s.Estado)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// Delete implements schedule.Repository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM horarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
