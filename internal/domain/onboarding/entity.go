package onboarding

import "time"

type OnboardingTask struct {
	ID          string
	EmployeeID  string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
