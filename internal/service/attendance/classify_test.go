package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

func mustTimeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tod
}

func at(clock string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04:05", "2025-03-10 "+clock)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		name        string
		entry       string
		tolerance   int
		observedAt  string
		wantStatus  attendance.EntryStatus
		wantMinutes int
	}{
		{
			name:       "well before entry time",
			entry:      "08:00",
			tolerance:  15,
			observedAt: "07:45:00",
			wantStatus: attendance.EntryOnTime,
		},
		{
			name:       "exactly at entry time",
			entry:      "08:00",
			tolerance:  15,
			observedAt: "08:00:00",
			wantStatus: attendance.EntryOnTime,
		},
		{
			name:       "exactly at tolerance deadline is on time",
			entry:      "08:00",
			tolerance:  15,
			observedAt: "08:15:00",
			wantStatus: attendance.EntryOnTime,
		},
		{
			name:        "one second past the deadline is late",
			entry:       "08:00",
			tolerance:   15,
			observedAt:  "08:15:01",
			wantStatus:  attendance.EntryLate,
			wantMinutes: 1,
		},
		{
			name:        "one minute past the deadline",
			entry:       "08:00",
			tolerance:   15,
			observedAt:  "08:16:00",
			wantStatus:  attendance.EntryLate,
			wantMinutes: 1,
		},
		{
			name:        "partial minutes truncate",
			entry:       "08:00",
			tolerance:   15,
			observedAt:  "08:30:30",
			wantStatus:  attendance.EntryLate,
			wantMinutes: 15,
		},
		{
			name:       "zero tolerance, on the dot",
			entry:      "09:00",
			tolerance:  0,
			observedAt: "09:00:00",
			wantStatus: attendance.EntryOnTime,
		},
		{
			name:        "zero tolerance, a second over",
			entry:       "09:00",
			tolerance:   0,
			observedAt:  "09:00:01",
			wantStatus:  attendance.EntryLate,
			wantMinutes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, minutes := classifyEntry(mustTimeOfDay(t, tt.entry), tt.tolerance, at(tt.observedAt))
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestClassifyExit(t *testing.T) {
	tests := []struct {
		name       string
		exit       string
		tolerance  int
		observedAt string
		want       attendance.ExitStatus
	}{
		{
			name:       "before scheduled exit is early",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "16:59:59",
			want:       attendance.ExitEarly,
		},
		{
			name:       "exactly at scheduled exit is normal",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "17:00:00",
			want:       attendance.ExitNormal,
		},
		{
			name:       "inside the window is normal",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "17:10:00",
			want:       attendance.ExitNormal,
		},
		{
			name:       "exactly at the window boundary is normal",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "17:15:00",
			want:       attendance.ExitNormal,
		},
		{
			name:       "past the window is overtime",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "17:15:01",
			want:       attendance.ExitOvertime,
		},
		{
			name:       "much later is overtime",
			exit:       "17:00",
			tolerance:  15,
			observedAt: "20:30:00",
			want:       attendance.ExitOvertime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyExit(mustTimeOfDay(t, tt.exit), tt.tolerance, at(tt.observedAt))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttendanceDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skip("tzdata not available")
	}

	observed := time.Date(2025, 3, 10, 23, 59, 59, 0, loc)
	day := attendanceDay(observed)

	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 10, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}
