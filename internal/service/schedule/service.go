package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
)

type ScheduleServiceImpl struct {
	scheduleRepo domain.Repository
	workerRepo   worker.Repository
}

func NewScheduleService(scheduleRepo domain.Repository, workerRepo worker.Repository) domain.Service {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		workerRepo:   workerRepo,
	}
}

func (s *ScheduleServiceImpl) List(ctx context.Context) ([]domain.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, mapScheduleToResponse(sched))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, req domain.UpsertScheduleRequest) (domain.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.ScheduleResponse{}, err
	}

	sched, err := scheduleFromRequest(req)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, sched)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}
	return mapScheduleToResponse(created), nil
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, id string, req domain.UpsertScheduleRequest) (domain.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.ScheduleResponse{}, err
	}

	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return domain.ScheduleResponse{}, err
	}

	sched, err := scheduleFromRequest(req)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}
	sched.ID = id

	if err := s.scheduleRepo.Update(ctx, sched); err != nil {
		return domain.ScheduleResponse{}, err
	}

	updated, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}
	return mapScheduleToResponse(updated), nil
}

// Delete refuses to remove a schedule that workers are still assigned
// to; those workers would silently lose their scan eligibility.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.workerRepo.CountBySchedule(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrScheduleInUse
	}

	return s.scheduleRepo.Delete(ctx, id)
}

func scheduleFromRequest(req domain.UpsertScheduleRequest) (domain.Schedule, error) {
	entry, err := domain.ParseTimeOfDay(req.EntryTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("invalid entry time: %w", err)
	}
	exit, err := domain.ParseTimeOfDay(req.ExitTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("invalid exit time: %w", err)
	}

	days := req.WorkingDays
	if len(days) == 0 {
		days = domain.DefaultWorkingDays()
	}
	rawDays, err := json.Marshal(days)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("failed to encode working days: %w", err)
	}
	raw := string(rawDays)

	estado := req.Estado
	if estado == "" {
		estado = "activo"
	}

	return domain.Schedule{
		Name:           req.Name,
		EntryTime:      &entry,
		ExitTime:       &exit,
		WorkingDaysRaw: &raw,
		Type:           domain.TypeCustom,
		Estado:         estado,
	}, nil
}

func mapScheduleToResponse(sched domain.Schedule) domain.ScheduleResponse {
	resp := domain.ScheduleResponse{
		ID:     sched.ID,
		Name:   sched.Name,
		Type:   sched.Type,
		Estado: sched.Estado,
	}
	if sched.EntryTime != nil {
		resp.EntryTime = sched.EntryTime.String()
	}
	if sched.ExitTime != nil {
		resp.ExitTime = sched.ExitTime.String()
	}

	days := domain.DefaultWorkingDays()
	if sched.WorkingDaysRaw != nil {
		if parsed, ok := domain.ParseWeekdaySet(*sched.WorkingDaysRaw); ok {
			days = parsed
		}
	}
	resp.WorkingDays = days

	return resp
}
