package attendance

import "time"

// Attendance status labels. LATE wins over HALF_DAY when both apply.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined columns
	EmployeeName *string
}
