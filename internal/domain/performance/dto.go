package performance

import (
	"github.com/nexhr/hr-backend-go/internal/pkg/validator"
)

type CreatePerformanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Reviewer   string `json:"reviewer"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	ReviewDate string `json:"review_date"`
}

func (r *CreatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Score < 0 || r.Score > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 0 and 100",
		})
	}

	if validator.IsEmpty(r.ReviewDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_date",
			Message: "review_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "review_date",
			Message: "review_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PerformanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Reviewer   string `json:"reviewer"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	ReviewDate string `json:"review_date"`
}

func ToResponse(p Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Reviewer:   p.Reviewer,
		Score:      p.Score,
		Feedback:   p.Feedback,
		ReviewDate: p.ReviewDate.Format("2006-01-02"),
	}
}
