package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

// FindActiveByBadge implements worker.Repository. FOR UPDATE OF t
// serializes concurrent scans for the same worker inside the scan
// transaction; readers outside a transaction get the pool and the lock
// is released at commit.
func (r *workerRepository) FindActiveByBadge(ctx context.Context, badgeCode string) (*worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.dni, t.nombres, t.apellidos, t.email, t.id_area,
		       t.id_horario, t.foto, t.codigo_qr, t.estado, t.created_at, t.updated_at
		FROM trabajadores t
		WHERE t.codigo_qr = $1
		  AND t.estado = 'activo'
		FOR UPDATE OF t
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, badgeCode).Scan(
		&w.ID, &w.DNI, &w.Names, &w.Surnames, &w.Email, &w.AreaID,
		&w.ScheduleID, &w.PhotoURL, &w.BadgeCode, &w.Estado, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find worker by badge: %w", err)
	}
	return &w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.dni, t.nombres, t.apellidos, t.email, t.id_area,
		       t.id_horario, t.foto, t.codigo_qr, t.estado, t.created_at, t.updated_at,
		       a.nombre_area, h.nombre_turno
		FROM trabajadores t
		INNER JOIN areas a ON a.id = t.id_area
		LEFT JOIN horarios h ON h.id = t.id_horario
		WHERE t.id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.DNI, &w.Names, &w.Surnames, &w.Email, &w.AreaID,
		&w.ScheduleID, &w.PhotoURL, &w.BadgeCode, &w.Estado, &w.CreatedAt, &w.UpdatedAt,
		&w.AreaName, &w.ScheduleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}
	return w, nil
}

// List implements worker.Repository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.dni, t.nombres, t.apellidos, t.email, t.id_area,
		       t.id_horario, t.foto, t.codigo_qr, t.estado, t.created_at, t.updated_at,
		       a.nombre_area, h.nombre_turno
		FROM trabajadores t
		INNER JOIN areas a ON a.id = t.id_area
		LEFT JOIN horarios h ON h.id = t.id_horario
		ORDER BY t.nombres, t.apellidos
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.DNI, &w.Names, &w.Surnames, &w.Email, &w.AreaID,
			&w.ScheduleID, &w.PhotoURL, &w.BadgeCode, &w.Estado, &w.CreatedAt, &w.UpdatedAt,
			&w.AreaName, &w.ScheduleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// Create implements worker.Repository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO trabajadores (
			dni, nombres, apellidos, email, id_area, id_horario, foto, codigo_qr, estado
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'activo')
		RETURNING id, estado, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.DNI, w.Names, w.Surnames, w.Email, w.AreaID, w.ScheduleID, w.PhotoURL, w.BadgeCode,
	).Scan(&w.ID, &w.Estado, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrDNIExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return w, nil
}

// Update implements worker.Repository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE trabajadores
		SET nombres = $2, apellidos = $3, email = $4, id_area = $5,
		    id_horario = $6, foto = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, w.ID, w.Names, w.Surnames, w.Email, w.AreaID, w.ScheduleID, w.PhotoURL)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

// SetEstado implements worker.Repository. Workers are soft-disabled,
// never deleted.
func (r *workerRepository) SetEstado(ctx context.Context, id string, estado string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE trabajadores SET estado = $2, updated_at = NOW() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("failed to set worker estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

// CountBySchedule implements worker.Repository.
func (r *workerRepository) CountBySchedule(ctx context.Context, scheduleID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM trabajadores WHERE id_horario = $1`, scheduleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workers by schedule: %w", err)
	}
	return count, nil
}
