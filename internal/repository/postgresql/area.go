package postgresql

import (
	"context"
	"fmt"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/area"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type areaRepository struct {
	db *database.DB
}

func NewAreaRepository(db *database.DB) area.Repository {
	return &areaRepository{db: db}
}

// List implements area.Repository.
func (r *areaRepository) List(ctx context.Context) ([]area.Area, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, nombre_area, estado, created_at FROM areas ORDER BY nombre_area`)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	var areas []area.Area
	for rows.Next() {
		var a area.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.Estado, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// Create implements area.Repository.
func (r *areaRepository) Create(ctx context.Context, name string) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	a := area.Area{Name: name, Estado: "activo"}
	err := q.QueryRow(ctx,
		`INSERT INTO areas (nombre_area, estado) VALUES ($1, 'activo') RETURNING id, created_at`,
		name,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return area.Area{}, fmt.Errorf("failed to create area: %w", err)
	}
	return a, nil
}

// SetEstado implements area.Repository.
func (r *areaRepository) SetEstado(ctx context.Context, id string, estado string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE areas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("failed to set area estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}
