package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/onboarding"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
)

type onboardingTaskRepositoryImpl struct {
	db database.Querier
}

func NewOnboardingTaskRepository(db database.Querier) onboarding.OnboardingTaskRepository {
	return &onboardingTaskRepositoryImpl{db: db}
}

const onboardingSelect = `
	SELECT id, employee_id, title, description, completed, created_at, updated_at
	FROM onboarding_tasks
`

func scanTask(row pgx.Row) (onboarding.OnboardingTask, error) {
	var task onboarding.OnboardingTask
	err := row.Scan(
		&task.ID, &task.EmployeeID, &task.Title, &task.Description,
		&task.Completed, &task.CreatedAt, &task.UpdatedAt,
	)
	return task, err
}

// Create implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) Create(ctx context.Context, task onboarding.OnboardingTask) (onboarding.OnboardingTask, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO onboarding_tasks (id, employee_id, title, description, completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, title, description, completed, created_at, updated_at
	`

	created, err := scanTask(q.QueryRow(ctx, query,
		task.ID, task.EmployeeID, task.Title, task.Description, task.Completed,
	))
	if err != nil {
		return onboarding.OnboardingTask{}, fmt.Errorf("failed to create onboarding task: %w", err)
	}

	return created, nil
}

// GetByID implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) GetByID(ctx context.Context, id string) (onboarding.OnboardingTask, error) {
	q := GetQuerier(ctx, o.db)

	task, err := scanTask(q.QueryRow(ctx, onboardingSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.OnboardingTask{}, onboarding.ErrTaskNotFound
		}
		return onboarding.OnboardingTask{}, fmt.Errorf("failed to get onboarding task by id: %w", err)
	}

	return task, nil
}

// List implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) List(ctx context.Context) ([]onboarding.OnboardingTask, error) {
	return o.queryTasks(ctx, onboardingSelect+` ORDER BY created_at`)
}

// ListByEmployee implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]onboarding.OnboardingTask, error) {
	return o.queryTasks(ctx, onboardingSelect+` WHERE employee_id = $1 ORDER BY created_at`, employeeID)
}

// Update implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) Update(ctx context.Context, task onboarding.OnboardingTask) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE onboarding_tasks
		SET title = $1, description = $2, completed = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, task.Title, task.Description, task.Completed, task.ID)
	if err != nil {
		return fmt.Errorf("failed to update onboarding task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}

	return nil
}

// Delete implements onboarding.OnboardingTaskRepository.
func (o *onboardingTaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `DELETE FROM onboarding_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete onboarding task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}

	return nil
}

func (o *onboardingTaskRepositoryImpl) queryTasks(ctx context.Context, query string, args ...interface{}) ([]onboarding.OnboardingTask, error) {
	q := GetQuerier(ctx, o.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []onboarding.OnboardingTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
