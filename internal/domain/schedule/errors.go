package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleInUse    = errors.New("schedule is assigned to workers")
)
