package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/dashboard"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// GetMetrics implements dashboard.Repository. One round trip for the
// counters, one for the recent-scans feed.
func (r *dashboardRepository) GetMetrics(ctx context.Context, day time.Time) (dashboard.Metrics, error) {
	q := GetQuerier(ctx, r.db)
	dateStr := day.Format("2006-01-02")

	query := `
		SELECT
			(SELECT COUNT(*) FROM trabajadores),
			(SELECT COUNT(*) FROM trabajadores WHERE estado = 'activo'),
			(SELECT COUNT(*) FROM trabajadores WHERE estado = 'inactivo'),
			(SELECT COUNT(*) FROM areas WHERE estado = 'activo'),
			(SELECT COUNT(*) FROM horarios WHERE estado = 'activo'),
			(SELECT COUNT(*) FROM registros_asistencia WHERE fecha = $1::date),
			(SELECT COUNT(*) FROM registros_asistencia WHERE fecha = $1::date AND estado_entrada = 'puntual'),
			(SELECT COUNT(*) FROM registros_asistencia WHERE fecha = $1::date AND estado_entrada = 'tardanza'),
			(SELECT COALESCE(AVG(minutos_tardanza), 0) FROM registros_asistencia
			 WHERE fecha = $1::date AND estado_entrada = 'tardanza')
	`

	var m dashboard.Metrics
	err := q.QueryRow(ctx, query, dateStr).Scan(
		&m.TotalWorkers, &m.ActiveWorkers, &m.InactiveWorkers,
		&m.ActiveAreas, &m.ActiveSchedules,
		&m.PresentToday, &m.OnTimeToday, &m.LateToday,
		&m.AvgLatenessMinutes,
	)
	if err != nil {
		return dashboard.Metrics{}, fmt.Errorf("failed to get dashboard metrics: %w", err)
	}

	scansQuery := `
		SELECT t.nombres || ' ' || t.apellidos, a.nombre_area,
		       to_char(r.hora_entrada, 'HH24:MI:SS'), r.estado_entrada
		FROM registros_asistencia r
		INNER JOIN trabajadores t ON t.id = r.trabajador_id
		INNER JOIN areas a ON a.id = t.id_area
		WHERE r.fecha = $1::date AND r.hora_entrada IS NOT NULL
		ORDER BY r.hora_entrada DESC
		LIMIT 10
	`

	rows, err := q.Query(ctx, scansQuery, dateStr)
	if err != nil {
		return dashboard.Metrics{}, fmt.Errorf("failed to get latest scans: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s dashboard.Scan
		if err := rows.Scan(&s.WorkerName, &s.AreaName, &s.CheckIn, &s.EntryStatus); err != nil {
			return dashboard.Metrics{}, fmt.Errorf("failed to scan dashboard row: %w", err)
		}
		m.LatestScans = append(m.LatestScans, s)
	}
	return m, rows.Err()
}
