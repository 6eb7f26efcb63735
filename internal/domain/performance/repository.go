package performance

import "context"

type PerformanceRepository interface {
	Create(ctx context.Context, performance Performance) (Performance, error)
	GetByID(ctx context.Context, id string) (Performance, error)
	List(ctx context.Context) ([]Performance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Performance, error)

	// GetLatestByEmployee returns nil when the employee has no reviews.
	GetLatestByEmployee(ctx context.Context, employeeID string) (*Performance, error)

	Delete(ctx context.Context, id string) error
}
