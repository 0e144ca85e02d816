package schedule

import (
	"context"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type Service interface {
	List(ctx context.Context) ([]ScheduleResponse, error)
	Create(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpsertScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type UpsertScheduleRequest struct {
	Name        string `json:"nombre_turno"`
	EntryTime   string `json:"hora_entrada"`
	ExitTime    string `json:"hora_salida"`
	WorkingDays []int  `json:"dias_laborales"`
	Estado      string `json:"estado,omitempty"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre_turno",
			Message: "nombre_turno is required",
		})
	}

	if _, err := ParseTimeOfDay(r.EntryTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hora_entrada",
			Message: "hora_entrada must be a valid HH:MM time",
		})
	}
	if _, err := ParseTimeOfDay(r.ExitTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hora_salida",
			Message: "hora_salida must be a valid HH:MM time",
		})
	}

	for _, d := range r.WorkingDays {
		if d < 1 || d > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "dias_laborales",
				Message: "dias_laborales must contain ISO weekdays 1-7",
			})
			break
		}
	}

	if r.Estado != "" && r.Estado != "activo" && r.Estado != "inactivo" {
		errs = append(errs, validator.ValidationError{
			Field:   "estado",
			Message: "estado must be activo or inactivo",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nombre_turno"`
	EntryTime   string `json:"hora_entrada"`
	ExitTime    string `json:"hora_salida"`
	WorkingDays []int  `json:"dias_laborales"`
	Type        string `json:"tipo"`
	Estado      string `json:"estado"`
}
