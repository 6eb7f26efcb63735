package onboarding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/onboarding"
)

type OnboardingTaskServiceImpl struct {
	onboarding.OnboardingTaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewOnboardingTaskService(
	taskRepo onboarding.OnboardingTaskRepository,
	employeeRepo employee.EmployeeRepository,
) onboarding.OnboardingTaskService {
	return &OnboardingTaskServiceImpl{
		OnboardingTaskRepository: taskRepo,
		employeeRepo:             employeeRepo,
	}
}

// Create implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) Create(ctx context.Context, req onboarding.CreateTaskRequest) (onboarding.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.TaskResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return onboarding.TaskResponse{}, employee.ErrEmployeeNotFound
	}

	task := onboarding.OnboardingTask{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
	}

	created, err := s.OnboardingTaskRepository.Create(ctx, task)
	if err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to create onboarding task: %w", err)
	}

	return onboarding.ToResponse(created), nil
}

// Get implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) Get(ctx context.Context, id string) (onboarding.TaskResponse, error) {
	task, err := s.OnboardingTaskRepository.GetByID(ctx, id)
	if err != nil {
		return onboarding.TaskResponse{}, err
	}
	return onboarding.ToResponse(task), nil
}

// List implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) List(ctx context.Context) ([]onboarding.TaskResponse, error) {
	tasks, err := s.OnboardingTaskRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	return toResponses(tasks), nil
}

// ListByEmployee implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]onboarding.TaskResponse, error) {
	tasks, err := s.OnboardingTaskRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks by employee: %w", err)
	}
	return toResponses(tasks), nil
}

// SetCompleted implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) SetCompleted(ctx context.Context, id string, completed bool) (onboarding.TaskResponse, error) {
	task, err := s.OnboardingTaskRepository.GetByID(ctx, id)
	if err != nil {
		return onboarding.TaskResponse{}, err
	}

	task.Completed = completed
	if err := s.OnboardingTaskRepository.Update(ctx, task); err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to update onboarding task: %w", err)
	}

	return onboarding.ToResponse(task), nil
}

// Delete implements onboarding.OnboardingTaskService.
func (s *OnboardingTaskServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.OnboardingTaskRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.OnboardingTaskRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete onboarding task: %w", err)
	}
	return nil
}

func toResponses(tasks []onboarding.OnboardingTask) []onboarding.TaskResponse {
	responses := make([]onboarding.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, onboarding.ToResponse(task))
	}
	return responses
}
