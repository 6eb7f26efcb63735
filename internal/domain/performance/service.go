package performance

import "context"

type PerformanceService interface {
	Create(ctx context.Context, req CreatePerformanceRequest) (PerformanceResponse, error)
	Get(ctx context.Context, id string) (PerformanceResponse, error)
	List(ctx context.Context) ([]PerformanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceResponse, error)

	// LatestByEmployee returns nil when the employee has no reviews.
	LatestByEmployee(ctx context.Context, employeeID string) (*PerformanceResponse, error)

	Delete(ctx context.Context, id string) error
}
