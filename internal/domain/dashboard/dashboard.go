package dashboard

import (
	"context"
	"time"
)

// Metrics is the admin dashboard snapshot for one day.
type Metrics struct {
	TotalWorkers       int     `json:"trabajadores_totales"`
	ActiveWorkers      int     `json:"trabajadores_activos"`
	InactiveWorkers    int     `json:"trabajadores_inactivos"`
	ActiveAreas        int     `json:"areas_activas"`
	ActiveSchedules    int     `json:"horarios_activos"`
	PresentToday       int     `json:"asistentes_hoy"`
	OnTimeToday        int     `json:"puntuales_hoy"`
	LateToday          int     `json:"tardanzas_hoy"`
	AvgLatenessMinutes float64 `json:"promedio_tardanza"`
	LatestScans        []Scan  `json:"ultimas_asistencias"`
}

// Scan is one row in the dashboard's recent-activity feed.
type Scan struct {
	WorkerName  string `json:"nombre_completo"`
	AreaName    string `json:"nombre_area"`
	CheckIn     string `json:"hora_entrada"`
	EntryStatus string `json:"estado_entrada"`
}

type Repository interface {
	GetMetrics(ctx context.Context, day time.Time) (Metrics, error)
}

type Service interface {
	GetMetrics(ctx context.Context, day time.Time) (Metrics, error)
}
