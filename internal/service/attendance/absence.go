package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	scheduleService "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
)

// AbsenceMarker back-fills no-show rows for a finished day. It is run
// by the nightly cron job, shortly after midnight, over the previous
// calendar date.
type AbsenceMarker struct {
	attendanceRepo domain.Repository
	workerRepo     worker.Repository
	settingsRepo   settings.Repository
	resolver       *scheduleService.Resolver
}

func NewAbsenceMarker(
	attendanceRepo domain.Repository,
	workerRepo worker.Repository,
	settingsRepo settings.Repository,
	resolver *scheduleService.Resolver,
) *AbsenceMarker {
	return &AbsenceMarker{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		settingsRepo:   settingsRepo,
		resolver:       resolver,
	}
}

// MarkAbsences inserts an absence row for every active worker who was
// scheduled to work on the given date but has no attendance record.
// Workers without a usable schedule are skipped, not failed: the job
// must finish the roster even when individual rows are broken.
func (m *AbsenceMarker) MarkAbsences(ctx context.Context, date time.Time) error {
	policy, err := m.settingsRepo.GetAttendancePolicy(ctx)
	if err != nil {
		return fmt.Errorf("failed to load attendance policy: %w", err)
	}

	workers, err := m.workerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workers: %w", err)
	}

	weekday := schedule.ISOWeekday(date)
	marked := 0
	for _, w := range workers {
		if w.Estado != worker.EstadoActive {
			continue
		}

		eff, err := m.resolver.Resolve(ctx, w.ID, policy.DefaultWorkingDays)
		if err != nil {
			slog.Warn("skipping worker during absence marking",
				"worker_id", w.ID, "error", err)
			continue
		}
		if !eff.WorkingDays.Contains(weekday) {
			continue
		}

		created, err := m.attendanceRepo.CreateAbsence(ctx, w.ID, date)
		if err != nil {
			return fmt.Errorf("failed to mark absence for worker %s: %w", w.ID, err)
		}
		if created {
			marked++
		}
	}

	slog.Info("absence marking finished",
		"date", date.Format("2006-01-02"), "marked", marked)
	return nil
}

// Run marks absences for yesterday. It is the function registered with
// the cron scheduler.
func (m *AbsenceMarker) Run(ctx context.Context) error {
	yesterday := time.Now().AddDate(0, 0, -1)
	return m.MarkAbsences(ctx, yesterday)
}
