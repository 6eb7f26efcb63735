package onboarding

import "context"

type OnboardingTaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	List(ctx context.Context) ([]TaskResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TaskResponse, error)
	SetCompleted(ctx context.Context, id string, completed bool) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}
