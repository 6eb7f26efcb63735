package employee

import (
	"time"

	"github.com/nexhr/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	JoinDate    string  `json:"join_date"`
	ManagerID   *string `json:"manager_id"`
	UserID      *string `json:"user_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "employee name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join date is required",
		})
	} else if joinDate, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join date must be in YYYY-MM-DD format",
		})
	} else if joinDate.After(time.Now()) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join date cannot be in the future",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	JoinDate    string  `json:"join_date"`
	ManagerID   *string `json:"manager_id"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:       r.Name,
		Department: r.Department,
		JoinDate:   r.JoinDate,
	}
	return create.Validate()
}

// EmployeeResponse is the enriched employee view: stored columns plus the
// derived metrics the dashboard consumes.
type EmployeeResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Designation       string   `json:"designation"`
	Department        string   `json:"department"`
	JoinDate          string   `json:"join_date"`
	Email             *string  `json:"email"`
	Phone             string   `json:"phone"`
	ManagerID         *string  `json:"manager_id"`
	ManagerName       *string  `json:"manager_name"`
	PerformanceScore  *float64 `json:"performance_score"`
	AttendanceRate    int      `json:"attendance_rate"`
	IsActive          bool     `json:"is_active"`
	TotalProjects     int      `json:"total_projects"`
	CompletedProjects int      `json:"completed_projects"`
	ProfileImageURL   string   `json:"profile_image_url"`
	TenureYears       int      `json:"tenure_years"`
}
