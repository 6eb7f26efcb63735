package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateForDate   = errors.New("employee already has an attendance record for this date")
	ErrFutureClockIn      = errors.New("clock in time cannot be in the future")
	ErrClockOutBeforeIn   = errors.New("clock out time cannot be before clock in time")
	ErrMinimumShiftNotMet = errors.New("minimum working hours (4 hours) not met")
	ErrTooOldToDelete     = errors.New("cannot delete attendance records older than 30 days")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)
