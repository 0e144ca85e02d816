package auth

import (
	"context"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type LoginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"contrasena"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario",
			Message: "usuario is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "contrasena",
			Message: "contrasena is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      UserSummary `json:"usuario"`
}

type UserSummary struct {
	ID       string  `json:"id"`
	Username string  `json:"usuario"`
	Role     string  `json:"rol"`
	WorkerID *string `json:"trabajador_id,omitempty"`
}
