package schedule

import "context"

type Repository interface {
	// GetByWorkerID returns the schedule linked to a worker, or nil when
	// the worker has no schedule assigned.
	GetByWorkerID(ctx context.Context, workerID string) (*Schedule, error)

	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	Create(ctx context.Context, s Schedule) (Schedule, error)
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id string) error
}
