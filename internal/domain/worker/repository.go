package worker

import "context"

type Repository interface {
	// FindActiveByBadge looks up an active worker by badge code. Inside
	// a scan transaction the implementation locks the worker row so
	// near-simultaneous scans for the same worker serialize.
	FindActiveByBadge(ctx context.Context, badgeCode string) (*Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Create(ctx context.Context, w Worker) (Worker, error)
	Update(ctx context.Context, w Worker) error
	SetEstado(ctx context.Context, id string, estado string) error
	CountBySchedule(ctx context.Context, scheduleID string) (int, error)
}
