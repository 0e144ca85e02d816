package attendance

import "errors"

// Scan rejections. Every one of these is an expected outcome the HTTP
// layer maps to a 4xx (503 for ErrTransient); none are retried here.
var (
	ErrWorkerNotFound     = errors.New("worker not found or inactive")
	ErrNoSchedule         = errors.New("worker has no schedule assigned")
	ErrIncompleteSchedule = errors.New("worker schedule has no entry or exit time")
	ErrNonWorkingDay      = errors.New("today is not a working day for this worker")
	ErrAlreadyCompleted   = errors.New("entry and exit already recorded today")
	ErrDuplicateScan      = errors.New("a concurrent scan already recorded this event")
	ErrTransient          = errors.New("attendance could not be recorded, scan again")

	ErrRecordNotFound = errors.New("attendance record not found")
)
