package settings

import (
	"context"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

// Configuration keys in the configuraciones table.
const (
	KeyEntryTolerance     = "tolerancia_tardanza"
	KeyExitTolerance      = "tolerancia_salida"
	KeyDefaultWorkingDays = "dias_laborales"
)

// Fallback tolerance when a key is unset or unparseable.
const DefaultToleranceMinutes = 15

// AttendancePolicy is the global configuration a scan is judged
// against. Administrators change it at runtime, so it is re-read from
// the database on every scan, never cached.
type AttendancePolicy struct {
	EntryToleranceMinutes int
	ExitToleranceMinutes  int
	DefaultWorkingDays    schedule.WeekdaySet
}

type Repository interface {
	// GetAttendancePolicy reads the policy keys, substituting defaults
	// for missing or unparseable values.
	GetAttendancePolicy(ctx context.Context) (AttendancePolicy, error)

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Service interface {
	GetPolicy(ctx context.Context) (PolicyResponse, error)
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}

type PolicyResponse struct {
	EntryToleranceMinutes int   `json:"tolerancia_tardanza"`
	ExitToleranceMinutes  int   `json:"tolerancia_salida"`
	DefaultWorkingDays    []int `json:"dias_laborales"`
}

type UpdatePolicyRequest struct {
	EntryToleranceMinutes *int  `json:"tolerancia_tardanza,omitempty"`
	ExitToleranceMinutes  *int  `json:"tolerancia_salida,omitempty"`
	DefaultWorkingDays    []int `json:"dias_laborales,omitempty"`
}
