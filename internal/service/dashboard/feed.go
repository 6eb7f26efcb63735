package dashboard

import (
	"context"
	"time"

	"github.com/nexhr/hr-backend-go/internal/domain/dashboard"
)

// StaticActivitySource replays a fixed activity feed and trend series. The
// real event stream lives in systems this backend does not own yet, so the
// dashboard ships with representative data instead of empty panels.
type StaticActivitySource struct{}

func NewStaticActivitySource() dashboard.ActivitySource {
	return &StaticActivitySource{}
}

func (s *StaticActivitySource) RecentActivities(ctx context.Context) []dashboard.RecentActivity {
	now := time.Now()
	return []dashboard.RecentActivity{
		{
			Type:         "attendance",
			Description:  "John Doe clocked in",
			Timestamp:    now.Add(-15 * time.Minute).Format(time.RFC3339),
			EmployeeName: "John Doe",
			Icon:         "clock",
		},
		{
			Type:         "performance",
			Description:  "Sarah Johnson received a performance review",
			Timestamp:    now.Add(-2 * time.Hour).Format(time.RFC3339),
			EmployeeName: "Sarah Johnson",
			Icon:         "star",
		},
		{
			Type:         "employee",
			Description:  "Alex Smith joined the company",
			Timestamp:    now.AddDate(0, 0, -1).Format(time.RFC3339),
			EmployeeName: "Alex Smith",
			Icon:         "user-plus",
		},
		{
			Type:        "project",
			Description: "Project Mobile App Redesign was completed",
			Timestamp:   now.AddDate(0, 0, -2).Format(time.RFC3339),
			Icon:        "check-circle",
		},
	}
}

func (s *StaticActivitySource) MonthlyTrend(ctx context.Context) ([]float64, []string) {
	scores := []float64{8.2, 8.4, 8.6, 8.5, 8.7, 8.8}
	months := []string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	return scores, months
}
