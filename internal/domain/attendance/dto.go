package attendance

import (
	"time"

	"github.com/nexhr/hr-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.ClockIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be an ISO8601 timestamp",
		})
	}

	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	ClockOut string `json:"clock_out"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.ClockOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be an ISO8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceResponse carries the stored record plus its derived fields.
type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name"`
	Date          string   `json:"date"`
	ClockIn       string   `json:"clock_in"`
	ClockOut      *string  `json:"clock_out"`
	Status        string   `json:"status"`
	IsLate        bool     `json:"is_late"`
	IsOvertime    bool     `json:"is_overtime"`
	IsWeekend     bool     `json:"is_weekend"`
	OvertimeHours float64  `json:"overtime_hours"`
	TotalHours    *float64 `json:"total_hours"`
	TotalMinutes  *int     `json:"total_minutes"`
}

// ToResponse maps a record and its derived fields to the API shape.
func ToResponse(a Attendance) AttendanceResponse {
	d := Derive(a)

	var employeeName string
	if a.EmployeeName != nil {
		employeeName = *a.EmployeeName
	}

	var clockOut *string
	if a.ClockOut != nil {
		s := a.ClockOut.Format(time.RFC3339)
		clockOut = &s
	}

	var totalHours *float64
	var totalMinutes *int
	if d.Total != nil {
		minutes := int(d.Total.Minutes())
		hours := float64(minutes) / 60.0
		totalMinutes = &minutes
		totalHours = &hours
	}

	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  employeeName,
		Date:          a.Date.Format("2006-01-02"),
		ClockIn:       a.ClockIn.Format(time.RFC3339),
		ClockOut:      clockOut,
		Status:        d.Status,
		IsLate:        d.IsLate,
		IsOvertime:    d.IsOvertime,
		IsWeekend:     d.IsWeekend,
		OvertimeHours: d.OvertimeHours,
		TotalHours:    totalHours,
		TotalMinutes:  totalMinutes,
	}
}
