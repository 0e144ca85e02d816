package schedule

import "time"

// Schedule types as stored in horarios.tipo
const (
	TypePredefined = "predefinido"
	TypeCustom     = "personalizado"
)

type Schedule struct {
	ID             string
	Name           string
	EntryTime      *TimeOfDay
	ExitTime       *TimeOfDay
	WorkingDaysRaw *string // JSON array of ISO weekdays, may be malformed
	Type           string
	Estado         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveSchedule is the fully resolved schedule a worker is measured
// against: both times present, working days defaulted if necessary.
type EffectiveSchedule struct {
	EntryTime   TimeOfDay
	ExitTime    TimeOfDay
	WorkingDays WeekdaySet
}
