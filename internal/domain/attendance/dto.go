package attendance

import (
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type ScanRequest struct {
	BadgeCode  string    `json:"codigo_qr"`
	ObservedAt time.Time `json:"-"` // supplied by the caller, never read from the clock here
	Method     Method    `json:"-"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BadgeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "codigo_qr",
			Message: "codigo_qr is required",
		})
	}
	if r.ObservedAt.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "observed_at",
			Message: "observation timestamp is required",
		})
	}
	if r.Method != MethodQR && r.Method != MethodManual {
		errs = append(errs, validator.ValidationError{
			Field:   "metodo_registro",
			Message: "metodo_registro must be qr or manual",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScanResult is the single discriminated outcome of a successful scan.
// Rejections travel as the sentinel errors in errors.go instead.
type ScanResult struct {
	Kind   EventKind `json:"tipo"`
	Status string    `json:"estado"`
	Record Record    `json:"-"`
}

type ListFilter struct {
	StartDate *string `json:"fecha_inicio,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"fecha_fin,omitempty"`    // YYYY-MM-DD
	DNI       *string `json:"dni,omitempty"`
	WorkerID  *string `json:"-"` // forced for Trabajador role
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_inicio",
				Message: "fecha_inicio must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_fin",
				Message: "fecha_fin must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"trabajador_id"`
	DNI         *string `json:"dni,omitempty"`
	WorkerName  *string `json:"nombre_completo,omitempty"`
	Schedule    *string `json:"horario,omitempty"`
	Date        string  `json:"fecha"`
	CheckIn     *string `json:"hora_entrada,omitempty"`
	CheckOut    *string `json:"hora_salida,omitempty"`
	LateMinutes int     `json:"minutos_tardanza"`
	EntryStatus string  `json:"estado_entrada"`
	ExitStatus  *string `json:"estado_salida,omitempty"`
	Method      string  `json:"metodo_registro"`
}
