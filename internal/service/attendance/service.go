package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/sse"
	scheduleService "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
)

type AttendanceServiceImpl struct {
	tx         database.TxRunner
	attendance attendance.Repository
	workers    worker.Repository
	settings   settings.Repository
	resolver   *scheduleService.Resolver
	hub        *sse.Hub
}

func NewAttendanceService(
	tx database.TxRunner,
	attendanceRepo attendance.Repository,
	workerRepo worker.Repository,
	settingsRepo settings.Repository,
	resolver *scheduleService.Resolver,
	hub *sse.Hub,
) attendance.Service {
	return &AttendanceServiceImpl{
		tx:         tx,
		attendance: attendanceRepo,
		workers:    workerRepo,
		settings:   settingsRepo,
		resolver:   resolver,
		hub:        hub,
	}
}

// SubmitScan implements attendance.Service. One scan, one transaction:
// the read-check-write over (worker, date) is atomic, so concurrent
// duplicate scans either serialize on the locked worker row or trip the
// (trabajador_id, fecha) unique index and come back as ErrDuplicateScan.
func (a *AttendanceServiceImpl) SubmitScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResult{}, err
	}

	var result attendance.ScanResult
	err := a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Policy is read fresh every scan; administrators change it at runtime.
		policy, err := a.settings.GetAttendancePolicy(txCtx)
		if err != nil {
			return fmt.Errorf("failed to load attendance policy: %w", err)
		}

		w, err := a.workers.FindActiveByBadge(txCtx, req.BadgeCode)
		if err != nil {
			return fmt.Errorf("failed to look up worker by badge: %w", err)
		}
		if w == nil {
			return attendance.ErrWorkerNotFound
		}

		eff, err := a.resolver.Resolve(txCtx, w.ID, policy.DefaultWorkingDays)
		if err != nil {
			return err
		}

		if !eff.WorkingDays.Contains(schedule.ISOWeekday(req.ObservedAt)) {
			return attendance.ErrNonWorkingDay
		}

		date := attendanceDay(req.ObservedAt)
		rec, err := a.attendance.GetByWorkerAndDate(txCtx, w.ID, date)
		if err != nil {
			return fmt.Errorf("failed to load today's record: %w", err)
		}

		switch attendance.StateOf(rec) {
		case attendance.StateNoRecord:
			status, lateMinutes := classifyEntry(eff.EntryTime, policy.EntryToleranceMinutes, req.ObservedAt)
			checkIn := req.ObservedAt
			created, err := a.attendance.Create(txCtx, attendance.Record{
				WorkerID:    w.ID,
				Date:        date,
				CheckIn:     &checkIn,
				LateMinutes: lateMinutes,
				EntryStatus: status,
				Method:      req.Method,
			})
			if err != nil {
				return err
			}
			result = attendance.ScanResult{
				Kind:   attendance.EventClockIn,
				Status: string(status),
				Record: created,
			}

		case attendance.StateEntered:
			status := classifyExit(eff.ExitTime, policy.ExitToleranceMinutes, req.ObservedAt)
			if err := a.attendance.UpdateCheckout(txCtx, rec.ID, req.ObservedAt, status); err != nil {
				return err
			}
			checkOut := req.ObservedAt
			rec.CheckOut = &checkOut
			rec.ExitStatus = &status
			result = attendance.ScanResult{
				Kind:   attendance.EventClockOut,
				Status: string(status),
				Record: *rec,
			}

		case attendance.StateCompleted:
			return attendance.ErrAlreadyCompleted
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Error("scan transaction timed out",
				"badge_code", req.BadgeCode,
				"observed_at", req.ObservedAt,
				"error", err,
			)
			return attendance.ScanResult{}, attendance.ErrTransient
		}
		return attendance.ScanResult{}, err
	}

	slog.Info("attendance event recorded",
		"worker_id", result.Record.WorkerID,
		"date", result.Record.Date.Format("2006-01-02"),
		"tipo", result.Kind,
		"estado", result.Status,
	)
	if a.hub != nil {
		a.hub.Publish(sse.Event{
			Topic: sse.TopicScans,
			Name:  "scan",
			Data:  mapRecordToResponse(result.Record),
		})
	}
	return result, nil
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.attendance.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var exitStatus *string
	if rec.ExitStatus != nil {
		s := string(*rec.ExitStatus)
		exitStatus = &s
	}

	return attendance.RecordResponse{
		ID:          rec.ID,
		WorkerID:    rec.WorkerID,
		DNI:         rec.WorkerDNI,
		WorkerName:  rec.WorkerName,
		Schedule:    rec.ScheduleName,
		Date:        rec.Date.Format("2006-01-02"),
		CheckIn:     timePtrToClock(rec.CheckIn),
		CheckOut:    timePtrToClock(rec.CheckOut),
		LateMinutes: rec.LateMinutes,
		EntryStatus: string(rec.EntryStatus),
		ExitStatus:  exitStatus,
		Method:      string(rec.Method),
	}
}
