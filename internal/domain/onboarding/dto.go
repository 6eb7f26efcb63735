package onboarding

import "github.com/nexhr/hr-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func ToResponse(t OnboardingTask) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		EmployeeID:  t.EmployeeID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}
