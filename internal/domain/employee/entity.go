package employee

import "time"

type Employee struct {
	ID          string
	Name        string
	Designation string
	Department  string
	JoinDate    time.Time
	ManagerID   *string
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined columns
	ManagerName *string
	UserEmail   *string
	UserRole    *string
}
