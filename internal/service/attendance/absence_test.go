package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	scheduleService "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
)

type fakeRosterRepo struct {
	worker.Repository
	workers []worker.Worker
}

func (f *fakeRosterRepo) List(ctx context.Context) ([]worker.Worker, error) {
	return f.workers, nil
}

type fakeAbsenceRepo struct {
	fakeAttendanceRepo
	absences map[string]bool
}

func (f *fakeAbsenceRepo) CreateAbsence(ctx context.Context, workerID string, date time.Time) (bool, error) {
	key := recordKey(workerID, date)
	if f.absences[key] || f.records[key] != nil {
		return false, nil
	}
	if f.absences == nil {
		f.absences = make(map[string]bool)
	}
	f.absences[key] = true
	return true, nil
}

func TestMarkAbsences(t *testing.T) {
	entry := mustTimeOfDay(t, "08:00")
	exit := mustTimeOfDay(t, "17:00")

	rosterRepo := &fakeRosterRepo{workers: []worker.Worker{
		{ID: "w1", Estado: worker.EstadoActive},  // scheduled, no record -> absent
		{ID: "w2", Estado: worker.EstadoActive},  // already has a record
		{ID: "w3", Estado: worker.EstadoInactive}, // inactive, skipped
		{ID: "w4", Estado: worker.EstadoActive},  // no schedule, skipped
	}}

	scheduleRepo := &fakeScheduleRepo{byWorker: map[string]*schedule.Schedule{
		"w1": {ID: "s1", EntryTime: &entry, ExitTime: &exit, WorkingDaysRaw: raw("[1,2,3,4,5]")},
		"w2": {ID: "s1", EntryTime: &entry, ExitTime: &exit, WorkingDaysRaw: raw("[1,2,3,4,5]")},
	}}

	settingsRepo := &fakeSettingsRepo{policy: settings.AttendancePolicy{
		EntryToleranceMinutes: 15,
		ExitToleranceMinutes:  15,
		DefaultWorkingDays:    schedule.DefaultWorkingDays(),
	}}

	// 2025-03-10 is a Monday.
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkIn := day.Add(8 * time.Hour)

	attendanceRepo := &fakeAbsenceRepo{}
	attendanceRepo.records = map[string]*attendance.Record{
		recordKey("w2", day): {ID: "r2", WorkerID: "w2", Date: day, CheckIn: &checkIn},
	}

	marker := NewAbsenceMarker(
		attendanceRepo,
		rosterRepo,
		settingsRepo,
		scheduleService.NewResolver(scheduleRepo),
	)

	require.NoError(t, marker.MarkAbsences(context.Background(), day))

	assert.True(t, attendanceRepo.absences[recordKey("w1", day)])
	assert.False(t, attendanceRepo.absences[recordKey("w2", day)])
	assert.False(t, attendanceRepo.absences[recordKey("w3", day)])
	assert.False(t, attendanceRepo.absences[recordKey("w4", day)])
}

func TestMarkAbsencesNonWorkingDay(t *testing.T) {
	entry := mustTimeOfDay(t, "08:00")
	exit := mustTimeOfDay(t, "17:00")

	rosterRepo := &fakeRosterRepo{workers: []worker.Worker{
		{ID: "w1", Estado: worker.EstadoActive},
	}}
	scheduleRepo := &fakeScheduleRepo{byWorker: map[string]*schedule.Schedule{
		"w1": {ID: "s1", EntryTime: &entry, ExitTime: &exit, WorkingDaysRaw: raw("[1,2,3,4,5]")},
	}}
	settingsRepo := &fakeSettingsRepo{policy: settings.AttendancePolicy{
		DefaultWorkingDays: schedule.DefaultWorkingDays(),
	}}

	attendanceRepo := &fakeAbsenceRepo{}
	marker := NewAbsenceMarker(
		attendanceRepo,
		rosterRepo,
		settingsRepo,
		scheduleService.NewResolver(scheduleRepo),
	)

	// 2025-03-09 is a Sunday; nobody is marked.
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, marker.MarkAbsences(context.Background(), sunday))
	assert.Empty(t, attendanceRepo.absences)
}
