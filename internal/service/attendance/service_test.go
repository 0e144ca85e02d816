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

// passthroughTx satisfies database.TxRunner without a database.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeWorkerRepo struct {
	worker.Repository
	byBadge map[string]*worker.Worker
}

func (f *fakeWorkerRepo) FindActiveByBadge(ctx context.Context, badgeCode string) (*worker.Worker, error) {
	return f.byBadge[badgeCode], nil
}

type fakeScheduleRepo struct {
	schedule.Repository
	byWorker map[string]*schedule.Schedule
}

func (f *fakeScheduleRepo) GetByWorkerID(ctx context.Context, workerID string) (*schedule.Schedule, error) {
	return f.byWorker[workerID], nil
}

type fakeSettingsRepo struct {
	settings.Repository
	policy settings.AttendancePolicy
}

func (f *fakeSettingsRepo) GetAttendancePolicy(ctx context.Context) (settings.AttendancePolicy, error) {
	return f.policy, nil
}

type fakeAttendanceRepo struct {
	attendance.Repository
	records   map[string]*attendance.Record // keyed workerID + date
	createErr error
	nextID    int
}

func recordKey(workerID string, date time.Time) string {
	return workerID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[recordKey(workerID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if f.createErr != nil {
		return attendance.Record{}, f.createErr
	}
	f.nextID++
	rec.ID = string(rune('a' + f.nextID))
	if f.records == nil {
		f.records = make(map[string]*attendance.Record)
	}
	stored := rec
	f.records[recordKey(rec.WorkerID, rec.Date)] = &stored
	return rec, nil
}

func (f *fakeAttendanceRepo) UpdateCheckout(ctx context.Context, id string, checkOut time.Time, status attendance.ExitStatus) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.CheckOut = &checkOut
			rec.ExitStatus = &status
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func raw(s string) *string { return &s }

func newTestService(t *testing.T, attendanceRepo *fakeAttendanceRepo) attendance.Service {
	t.Helper()

	entry := mustTimeOfDay(t, "08:00")
	exit := mustTimeOfDay(t, "17:00")

	workerRepo := &fakeWorkerRepo{byBadge: map[string]*worker.Worker{
		"QR-12345678-abc": {ID: "w1", DNI: "12345678", Estado: worker.EstadoActive},
		"QR-99999999-xyz": {ID: "w2", DNI: "99999999", Estado: worker.EstadoActive},
		"QR-55555555-nil": {ID: "w3", DNI: "55555555", Estado: worker.EstadoActive},
	}}
	scheduleRepo := &fakeScheduleRepo{byWorker: map[string]*schedule.Schedule{
		"w1": {ID: "s1", EntryTime: &entry, ExitTime: &exit, WorkingDaysRaw: raw("[1,2,3,4,5]")},
		"w3": {ID: "s3", EntryTime: &entry}, // exit time missing
	}}
	settingsRepo := &fakeSettingsRepo{policy: settings.AttendancePolicy{
		EntryToleranceMinutes: 15,
		ExitToleranceMinutes:  15,
		DefaultWorkingDays:    schedule.DefaultWorkingDays(),
	}}

	return NewAttendanceService(
		passthroughTx{},
		attendanceRepo,
		workerRepo,
		settingsRepo,
		scheduleService.NewResolver(scheduleRepo),
		nil,
	)
}

// 2025-03-10 is a Monday.
func monday(clock string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04:05", "2025-03-10 "+clock)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestSubmitScan_FullDay(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	// First scan clocks in, on time.
	result, err := svc.SubmitScan(ctx, attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: monday("08:05:00"),
		Method:     attendance.MethodQR,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.EventClockIn, result.Kind)
	assert.Equal(t, string(attendance.EntryOnTime), result.Status)
	assert.Equal(t, 0, result.Record.LateMinutes)

	// Second scan clocks out, inside the exit window.
	result, err = svc.SubmitScan(ctx, attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: monday("17:05:00"),
		Method:     attendance.MethodQR,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.EventClockOut, result.Kind)
	assert.Equal(t, string(attendance.ExitNormal), result.Status)

	// Third scan is rejected.
	_, err = svc.SubmitScan(ctx, attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: monday("18:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCompleted)
}

func TestSubmitScan_LateEntry(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(t, repo)

	result, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: monday("08:25:00"),
		Method:     attendance.MethodQR,
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EntryLate), result.Status)
	assert.Equal(t, 10, result.Record.LateMinutes)
}

func TestSubmitScan_UnknownBadge(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{})

	_, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-00000000-nope",
		ObservedAt: monday("08:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrWorkerNotFound)
}

func TestSubmitScan_NoSchedule(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{})

	_, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-99999999-xyz",
		ObservedAt: monday("08:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrNoSchedule)
}

func TestSubmitScan_IncompleteSchedule(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{})

	_, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-55555555-nil",
		ObservedAt: monday("08:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrIncompleteSchedule)
}

func TestSubmitScan_NonWorkingDay(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{})

	// 2025-03-09 is a Sunday.
	sunday, err := time.Parse("2006-01-02 15:04:05", "2025-03-09 08:00:00")
	require.NoError(t, err)

	_, err = svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: sunday,
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrNonWorkingDay)
}

func TestSubmitScan_DuplicateRace(t *testing.T) {
	// Simulates the loser of a concurrent first-scan race: the read saw
	// no record but the insert trips the unique index.
	repo := &fakeAttendanceRepo{createErr: attendance.ErrDuplicateScan}
	svc := newTestService(t, repo)

	_, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "QR-12345678-abc",
		ObservedAt: monday("08:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateScan)
}

func TestSubmitScan_Validation(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{})

	_, err := svc.SubmitScan(context.Background(), attendance.ScanRequest{
		BadgeCode:  "",
		ObservedAt: monday("08:00:00"),
		Method:     attendance.MethodQR,
	})
	assert.Error(t, err)
}
