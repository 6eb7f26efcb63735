package dashboard

import "context"

type DashboardService interface {
	// GetStats never fails on missing data; every gap degrades to a default.
	GetStats(ctx context.Context) (DashboardStatsResponse, error)
}

// ActivitySource supplies the recent-activity feed and the monthly
// performance trend series. Real event sourcing lives outside this system;
// the default implementation replays a fixed feed.
type ActivitySource interface {
	RecentActivities(ctx context.Context) []RecentActivity
	MonthlyTrend(ctx context.Context) (scores []float64, months []string)
}
