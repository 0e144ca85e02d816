package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance rows. The scan-path
// methods (GetByWorkerAndDate, Create, UpdateCheckout) run inside the
// transaction the service opens per scan; the row read is what the
// state machine derives its DayState from.
type Repository interface {
	// GetByWorkerAndDate returns the worker's record for the given local
	// calendar date, or nil when none exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Record, error)

	// Create inserts a clock-in row. A unique index over
	// (trabajador_id, fecha) rejects concurrent duplicates.
	Create(ctx context.Context, rec Record) (Record, error)

	// UpdateCheckout fills the check-out half of an existing row.
	UpdateCheckout(ctx context.Context, id string, checkOut time.Time, status ExitStatus) error

	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// CreateAbsence inserts a no-show row for the nightly job. It must
	// not fail on an existing (worker, date) record.
	CreateAbsence(ctx context.Context, workerID string, date time.Time) (bool, error)
}

type Service interface {
	// SubmitScan runs the whole scan state machine inside one
	// transaction and returns exactly one outcome: a ScanResult or one
	// of the rejection errors in errors.go.
	SubmitScan(ctx context.Context, req ScanRequest) (ScanResult, error)

	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
}
