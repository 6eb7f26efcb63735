package response

import (
	"errors"
	"net/http"

	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/auth"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/onboarding"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
	"github.com/nexhr/hr-backend-go/internal/domain/user"
	"github.com/nexhr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrManagerCycle):
		BadRequest(w, "Manager assignment would create a reporting cycle", nil)
	case errors.Is(err, employee.ErrHasAttendanceRecords):
		Conflict(w, "Cannot delete employee with existing attendance records")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateForDate):
		Conflict(w, "Employee already has an attendance record for this date")
	case errors.Is(err, attendance.ErrFutureClockIn):
		BadRequest(w, "Clock in time cannot be in the future", nil)
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock out time cannot be before clock in time", nil)
	case errors.Is(err, attendance.ErrMinimumShiftNotMet):
		BadRequest(w, "Minimum working hours (4 hours) not met", nil)
	case errors.Is(err, attendance.ErrTooOldToDelete):
		BadRequest(w, "Cannot delete attendance records older than 30 days", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrPerformanceNotFound):
		NotFound(w, "Performance review not found")

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
