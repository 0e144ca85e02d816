package worker

import (
	"context"
	"mime/multipart"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type Service interface {
	List(ctx context.Context) ([]WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	SetEstado(ctx context.Context, id string, estado string) error
}

type CreateWorkerRequest struct {
	DNI        string                `json:"dni"`
	Names      string                `json:"nombres"`
	Surnames   string                `json:"apellidos"`
	Email      *string               `json:"email,omitempty"`
	AreaID     string                `json:"id_area"`
	ScheduleID *string               `json:"id_horario,omitempty"`
	Photo      multipart.File        `json:"-"`
	PhotoInfo  *multipart.FileHeader `json:"-"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be 8 digits",
		})
	}
	if validator.IsEmpty(r.Names) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombres",
			Message: "nombres is required",
		})
	}
	if validator.IsEmpty(r.Surnames) {
		errs = append(errs, validator.ValidationError{
			Field:   "apellidos",
			Message: "apellidos is required",
		})
	}
	if validator.IsEmpty(r.AreaID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id_area",
			Message: "id_area is required",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}
	if r.PhotoInfo != nil && r.PhotoInfo.Size > 5<<20 {
		errs = append(errs, validator.ValidationError{
			Field:   "foto",
			Message: "foto must not exceed 5MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	Names      *string               `json:"nombres,omitempty"`
	Surnames   *string               `json:"apellidos,omitempty"`
	Email      *string               `json:"email,omitempty"`
	AreaID     *string               `json:"id_area,omitempty"`
	ScheduleID *string               `json:"id_horario,omitempty"`
	Photo      multipart.File        `json:"-"`
	PhotoInfo  *multipart.FileHeader `json:"-"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}
	if r.PhotoInfo != nil && r.PhotoInfo.Size > 5<<20 {
		errs = append(errs, validator.ValidationError{
			Field:   "foto",
			Message: "foto must not exceed 5MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID           string  `json:"id"`
	DNI          string  `json:"dni"`
	Names        string  `json:"nombres"`
	Surnames     string  `json:"apellidos"`
	Email        *string `json:"email,omitempty"`
	AreaID       string  `json:"id_area"`
	AreaName     *string `json:"nombre_area,omitempty"`
	ScheduleID   *string `json:"id_horario,omitempty"`
	ScheduleName *string `json:"nombre_turno,omitempty"`
	PhotoURL     *string `json:"foto,omitempty"`
	BadgeCode    string  `json:"codigo_qr"`
	QRImage      string  `json:"qr_image,omitempty"` // base64 data URI
	Estado       string  `json:"estado"`
}
