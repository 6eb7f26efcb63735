package dashboard

// DashboardStatsResponse is the single aggregate snapshot behind
// GET /api/dashboard/stats. Every field degrades to a zero value or a default
// bucket when data is missing; the dashboard must always render.
type DashboardStatsResponse struct {
	TotalEmployees        int              `json:"total_employees"`
	ActiveEmployees       int              `json:"active_employees"`
	TotalDepartments      int              `json:"total_departments"`
	AveragePerformance    float64          `json:"average_performance"`
	AverageAttendance     float64          `json:"average_attendance"`
	TotalProjects         int              `json:"total_projects"`
	CompletedProjects     int              `json:"completed_projects"`
	ProjectCompletionRate float64          `json:"project_completion_rate"`
	DepartmentStats       map[string]int   `json:"department_stats"`
	PerformanceBuckets    map[string]int   `json:"performance_distribution"`
	RecentActivities      []RecentActivity `json:"recent_activities"`
	TopPerformers         []TopPerformer   `json:"top_performers"`
	AttendanceSummary     AttendanceSummary `json:"attendance_summary"`
	PerformanceTrend      PerformanceTrend `json:"performance_trend"`
}

// Performance distribution bucket labels, on the 0-10 score scale.
const (
	BucketExcellent        = "Excellent"         // >= 9.0
	BucketGood             = "Good"              // >= 8.0
	BucketSatisfactory     = "Satisfactory"      // >= 7.0
	BucketNeedsImprovement = "Needs Improvement" // < 7.0
	BucketNotRated         = "Not Rated"         // no score
)

type TopPerformer struct {
	EmployeeName     string  `json:"employee_name"`
	Department       string  `json:"department"`
	Designation      string  `json:"designation"`
	PerformanceScore float64 `json:"performance_score"`
}

type AttendanceSummary struct {
	PresentToday               int     `json:"present_today"`
	AbsentToday                int     `json:"absent_today"`
	LateToday                  int     `json:"late_today"`
	AverageAttendanceThisMonth float64 `json:"average_attendance_this_month"`
	TotalWorkingDays           int     `json:"total_working_days"`
}

type RecentActivity struct {
	Type         string `json:"type"`
	Description  string `json:"description"`
	Timestamp    string `json:"timestamp"`
	EmployeeName string `json:"employee_name"`
	Icon         string `json:"icon"`
}

type PerformanceTrend struct {
	MonthlyScores    []float64 `json:"monthly_scores"`
	Months           []string  `json:"months"`
	TrendDirection   float64   `json:"trend_direction"`
	TrendDescription string    `json:"trend_description"`
}
