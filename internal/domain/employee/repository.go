package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)

	// ManagerChainContains walks the manager chain upward from startID and
	// reports whether targetID appears in it. Used to reject reporting cycles.
	ManagerChainContains(ctx context.Context, startID string, targetID string) (bool, error)
}
