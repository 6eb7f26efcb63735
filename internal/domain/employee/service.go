package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListByManager(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	ListLowPerformance(ctx context.Context, threshold int) ([]EmployeeResponse, error)
	ListByTenure(ctx context.Context, years int) ([]EmployeeResponse, error)
}

// ProjectEstimator supplies per-employee project counts. Project tracking
// lives outside this system, so the default implementation is a deterministic
// placeholder and tests substitute their own.
type ProjectEstimator interface {
	TotalProjects(employeeID string) int
	CompletedProjects(employeeID string) int
}
