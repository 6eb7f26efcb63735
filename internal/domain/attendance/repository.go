package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Dates are
// calendar days; timestamps are absolute.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	CountByEmployee(ctx context.Context, employeeID string) (int64, error)
	CountByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) (int64, error)

	UpdateClockOut(ctx context.Context, id string, clockOut time.Time) error
	Delete(ctx context.Context, id string) error
}
