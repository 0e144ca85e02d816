package attendance

import (
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

// classifyEntry judges a clock-in against the scheduled entry time plus
// the tolerance window. The tolerance is inclusive: a scan exactly at
// the deadline is still on time. Lateness is whole minutes past the
// deadline, truncated, with a floor of one minute for any scan strictly
// past it so that classification and magnitude always agree.
func classifyEntry(entry schedule.TimeOfDay, toleranceMinutes int, observedAt time.Time) (attendance.EntryStatus, int) {
	deadline := entry.At(observedAt).Add(time.Duration(toleranceMinutes) * time.Minute)
	if !observedAt.After(deadline) {
		return attendance.EntryOnTime, 0
	}

	late := int(observedAt.Sub(deadline) / time.Minute)
	if late < 1 {
		late = 1
	}
	return attendance.EntryLate, late
}

// classifyExit judges a clock-out. Leaving any time before the
// scheduled exit is an early departure; past the exit tolerance window
// it counts as overtime. The window itself, boundaries included, is a
// normal departure.
func classifyExit(exit schedule.TimeOfDay, toleranceMinutes int, observedAt time.Time) attendance.ExitStatus {
	scheduledExit := exit.At(observedAt)
	if observedAt.Before(scheduledExit) {
		return attendance.ExitEarly
	}

	deadline := scheduledExit.Add(time.Duration(toleranceMinutes) * time.Minute)
	if observedAt.After(deadline) {
		return attendance.ExitOvertime
	}
	return attendance.ExitNormal
}

// attendanceDay is the local calendar date the scan belongs to.
func attendanceDay(observedAt time.Time) time.Time {
	return time.Date(observedAt.Year(), observedAt.Month(), observedAt.Day(), 0, 0, 0, 0, observedAt.Location())
}
