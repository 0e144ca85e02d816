package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo domain.Repository
}

func NewSettingsService(settingsRepo domain.Repository) domain.Service {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) GetPolicy(ctx context.Context) (domain.PolicyResponse, error) {
	policy, err := s.settingsRepo.GetAttendancePolicy(ctx)
	if err != nil {
		return domain.PolicyResponse{}, err
	}
	return mapPolicyToResponse(policy), nil
}

// UpdatePolicy persists the provided keys. The next scan picks the new
// values up immediately since the policy is read per scan.
func (s *SettingsServiceImpl) UpdatePolicy(ctx context.Context, req domain.UpdatePolicyRequest) (domain.PolicyResponse, error) {
	if err := validatePolicyRequest(req); err != nil {
		return domain.PolicyResponse{}, err
	}

	if req.EntryToleranceMinutes != nil {
		if err := s.settingsRepo.Set(ctx, domain.KeyEntryTolerance, strconv.Itoa(*req.EntryToleranceMinutes)); err != nil {
			return domain.PolicyResponse{}, err
		}
	}
	if req.ExitToleranceMinutes != nil {
		if err := s.settingsRepo.Set(ctx, domain.KeyExitTolerance, strconv.Itoa(*req.ExitToleranceMinutes)); err != nil {
			return domain.PolicyResponse{}, err
		}
	}
	if len(req.DefaultWorkingDays) > 0 {
		raw, err := json.Marshal(req.DefaultWorkingDays)
		if err != nil {
			return domain.PolicyResponse{}, fmt.Errorf("failed to encode working days: %w", err)
		}
		if err := s.settingsRepo.Set(ctx, domain.KeyDefaultWorkingDays, string(raw)); err != nil {
			return domain.PolicyResponse{}, err
		}
	}

	return s.GetPolicy(ctx)
}

func validatePolicyRequest(req domain.UpdatePolicyRequest) error {
	var errs validator.ValidationErrors

	if req.EntryToleranceMinutes != nil && *req.EntryToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerancia_tardanza",
			Message: "tolerancia_tardanza must not be negative",
		})
	}
	if req.ExitToleranceMinutes != nil && *req.ExitToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerancia_salida",
			Message: "tolerancia_salida must not be negative",
		})
	}
	for _, d := range req.DefaultWorkingDays {
		if d < 1 || d > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "dias_laborales",
				Message: "dias_laborales must contain ISO weekdays 1-7",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func mapPolicyToResponse(policy domain.AttendancePolicy) domain.PolicyResponse {
	days := policy.DefaultWorkingDays
	if len(days) == 0 {
		days = schedule.DefaultWorkingDays()
	}
	return domain.PolicyResponse{
		EntryToleranceMinutes: policy.EntryToleranceMinutes,
		ExitToleranceMinutes:  policy.ExitToleranceMinutes,
		DefaultWorkingDays:    []int(days),
	}
}
