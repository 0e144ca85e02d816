package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

// Resolver produces the effective schedule a worker is measured
// against. It is read-only; the scan service calls it inside the scan
// transaction.
type Resolver struct {
	scheduleRepo schedule.Repository
}

func NewResolver(scheduleRepo schedule.Repository) *Resolver {
	return &Resolver{scheduleRepo: scheduleRepo}
}

// Resolve combines the worker's linked schedule with the system-wide
// default working days. A missing schedule or missing entry/exit time
// rejects the scan; malformed working-day data does not — bad persisted
// configuration must never block attendance capture, so it falls back
// to defaultDays with a logged anomaly.
func (r *Resolver) Resolve(ctx context.Context, workerID string, defaultDays schedule.WeekdaySet) (schedule.EffectiveSchedule, error) {
	sched, err := r.scheduleRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		return schedule.EffectiveSchedule{}, fmt.Errorf("failed to get worker schedule: %w", err)
	}
	if sched == nil {
		return schedule.EffectiveSchedule{}, attendance.ErrNoSchedule
	}

	if sched.EntryTime == nil || sched.ExitTime == nil {
		return schedule.EffectiveSchedule{}, attendance.ErrIncompleteSchedule
	}

	days := defaultDays
	if len(days) == 0 {
		days = schedule.DefaultWorkingDays()
	}
	if sched.WorkingDaysRaw != nil {
		parsed, ok := schedule.ParseWeekdaySet(*sched.WorkingDaysRaw)
		if ok {
			days = parsed
		} else {
			slog.Warn("malformed working days on schedule, using default set",
				"worker_id", workerID,
				"schedule_id", sched.ID,
				"raw", *sched.WorkingDaysRaw,
			)
		}
	}

	return schedule.EffectiveSchedule{
		EntryTime:   *sched.EntryTime,
		ExitTime:    *sched.ExitTime,
		WorkingDays: days,
	}, nil
}
