package onboarding

import "context"

type OnboardingTaskRepository interface {
	Create(ctx context.Context, task OnboardingTask) (OnboardingTask, error)
	GetByID(ctx context.Context, id string) (OnboardingTask, error)
	List(ctx context.Context) ([]OnboardingTask, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OnboardingTask, error)
	Update(ctx context.Context, task OnboardingTask) error
	Delete(ctx context.Context, id string) error
}
