package performance

import "time"

// Performance is a review row. Scores are stored on a 0-100 scale; derived
// metrics divide by 10. Reviews are immutable once created.
type Performance struct {
	ID         string
	EmployeeID string
	Reviewer   string
	Score      int
	Feedback   string
	ReviewDate time.Time
	CreatedAt  time.Time
}
