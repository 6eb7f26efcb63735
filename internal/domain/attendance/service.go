package attendance

import (
	"context"
	"time"
)

// AttendanceService is the rule engine over attendance records: it validates
// mutations, derives per-record status on reads and computes attendance rates.
type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	RecordClockOut(ctx context.Context, id string, req ClockOutRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context) ([]AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	ListToday(ctx context.Context) ([]AttendanceResponse, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]AttendanceResponse, error)
	ListLateArrivals(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	ListOvertime(ctx context.Context, date time.Time) ([]AttendanceResponse, error)

	// GetEmployeeToday returns nil when the employee has no record today.
	GetEmployeeToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// Rate is the integer percentage of days in [start, end] with an
	// attendance row, clamped to [0, 100]. A zero-day span rates 100.
	Rate(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}
