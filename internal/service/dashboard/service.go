package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/dashboard"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
	"github.com/nexhr/hr-backend-go/internal/pkg/cache"
	"golang.org/x/sync/errgroup"
)

const statsCacheKey = "dashboard:stats"

type DashboardServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	performanceRepo performance.PerformanceRepository
	estimator       employee.ProjectEstimator
	activities      dashboard.ActivitySource
	cache           cache.Cache
	cacheTTL        time.Duration
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	performanceRepo performance.PerformanceRepository,
	estimator employee.ProjectEstimator,
	activities dashboard.ActivitySource,
	statsCache cache.Cache,
	cacheTTL time.Duration,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		performanceRepo: performanceRepo,
		estimator:       estimator,
		activities:      activities,
		cache:           statsCache,
		cacheTTL:        cacheTTL,
	}
}

// GetStats implements dashboard.DashboardService. The snapshot is cached for
// the configured TTL; a stale or missing cache entry triggers a recompute.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.DashboardStatsResponse, error) {
	if data, ok, err := s.cache.Get(ctx, statsCacheKey); err == nil && ok {
		var cached dashboard.DashboardStatsResponse
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	stats := s.compute(ctx)

	if data, err := json.Marshal(stats); err == nil {
		_ = s.cache.Put(ctx, statsCacheKey, data, s.cacheTTL)
	}

	return stats, nil
}

// compute assembles the snapshot. Source failures degrade to empty inputs so
// the dashboard always renders.
func (s *DashboardServiceImpl) compute(ctx context.Context) dashboard.DashboardStatsResponse {
	var (
		employees    []employee.Employee
		latestScores map[string]int
		todayRows    []attendance.Attendance
		monthRows    []attendance.Attendance
	)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.employeeRepo.List(gctx)
		if err != nil {
			return nil
		}
		employees = list

		latestScores = make(map[string]int, len(list))
		for _, emp := range list {
			latest, err := s.performanceRepo.GetLatestByEmployee(gctx, emp.ID)
			if err != nil || latest == nil {
				continue
			}
			latestScores[emp.ID] = latest.Score
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.attendanceRepo.ListByDate(gctx, today)
		if err == nil {
			todayRows = rows
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.attendanceRepo.ListByDateRange(gctx, monthStart, today)
		if err == nil {
			monthRows = rows
		}
		return nil
	})

	_ = g.Wait()

	stats := dashboard.DashboardStatsResponse{
		TotalEmployees:  len(employees),
		DepartmentStats: make(map[string]int),
		PerformanceBuckets: map[string]int{
			dashboard.BucketExcellent:        0,
			dashboard.BucketGood:             0,
			dashboard.BucketSatisfactory:     0,
			dashboard.BucketNeedsImprovement: 0,
			dashboard.BucketNotRated:         0,
		},
		RecentActivities: s.activities.RecentActivities(ctx),
	}

	var performanceSum float64
	type ranked struct {
		emp   employee.Employee
		score int
	}
	candidates := make([]ranked, 0, len(employees))

	for _, emp := range employees {
		if emp.UserID != nil && emp.UserRole != nil {
			stats.ActiveEmployees++
		}
		stats.DepartmentStats[emp.Department]++

		stats.TotalProjects += s.estimator.TotalProjects(emp.ID)
		stats.CompletedProjects += s.estimator.CompletedProjects(emp.ID)

		// Unrated employees carry the 8.5 default everywhere a score is
		// needed, including the top-performer ranking.
		score, ok := latestScores[emp.ID]
		if !ok {
			stats.PerformanceBuckets[dashboard.BucketNotRated]++
			performanceSum += 8.5
			candidates = append(candidates, ranked{emp: emp, score: 85})
			continue
		}

		candidates = append(candidates, ranked{emp: emp, score: score})
		display := float64(score) / 10.0
		performanceSum += display

		switch {
		case display >= 9.0:
			stats.PerformanceBuckets[dashboard.BucketExcellent]++
		case display >= 8.0:
			stats.PerformanceBuckets[dashboard.BucketGood]++
		case display >= 7.0:
			stats.PerformanceBuckets[dashboard.BucketSatisfactory]++
		default:
			stats.PerformanceBuckets[dashboard.BucketNeedsImprovement]++
		}
	}

	stats.TotalDepartments = len(stats.DepartmentStats)
	if len(employees) > 0 {
		stats.AveragePerformance = round1(performanceSum / float64(len(employees)))
	}
	if stats.TotalProjects > 0 {
		stats.ProjectCompletionRate = round1(float64(stats.CompletedProjects) / float64(stats.TotalProjects) * 100)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	stats.TopPerformers = make([]dashboard.TopPerformer, 0, 5)
	for i, r := range candidates {
		if i == 5 {
			break
		}
		stats.TopPerformers = append(stats.TopPerformers, dashboard.TopPerformer{
			EmployeeName:     r.emp.Name,
			Department:       r.emp.Department,
			Designation:      r.emp.Designation,
			PerformanceScore: float64(r.score) / 10.0,
		})
	}

	stats.AttendanceSummary = s.attendanceSummary(employees, todayRows, monthRows, monthStart, today)
	stats.AverageAttendance = averageAttendanceRate(employees, monthRows, today)
	stats.PerformanceTrend = s.performanceTrend(ctx)

	return stats
}

func (s *DashboardServiceImpl) attendanceSummary(
	employees []employee.Employee,
	todayRows, monthRows []attendance.Attendance,
	monthStart, today time.Time,
) dashboard.AttendanceSummary {
	summary := dashboard.AttendanceSummary{
		TotalWorkingDays: weekdaysBetween(monthStart, today),
	}

	// Counting is by derived status: late still means present, a half day
	// does not.
	for _, row := range todayRows {
		switch attendance.Derive(row).Status {
		case attendance.StatusPresent:
			summary.PresentToday++
		case attendance.StatusLate:
			summary.PresentToday++
			summary.LateToday++
		}
	}

	if absent := len(employees) - summary.PresentToday; absent > 0 {
		summary.AbsentToday = absent
	}

	// A calendar day scores 100 when any of its rows is present or late,
	// 0 otherwise; the average runs from the 1st of the month through today.
	coveredDays := make(map[string]bool)
	for _, row := range monthRows {
		switch attendance.Derive(row).Status {
		case attendance.StatusPresent, attendance.StatusLate:
			coveredDays[row.Date.Format("2006-01-02")] = true
		}
	}
	if elapsed := today.Day(); elapsed > 0 {
		summary.AverageAttendanceThisMonth = round1(float64(len(coveredDays)) * 100 / float64(elapsed))
	}

	return summary
}

// averageAttendanceRate is the mean of each employee's month-to-date rate:
// rows this month over days elapsed, clamped to [0, 100].
func averageAttendanceRate(employees []employee.Employee, monthRows []attendance.Attendance, today time.Time) float64 {
	if len(employees) == 0 {
		return 0
	}

	rowsPerEmployee := make(map[string]int)
	for _, row := range monthRows {
		rowsPerEmployee[row.EmployeeID]++
	}

	elapsed := today.Day()
	var sum float64
	for _, emp := range employees {
		rate := rowsPerEmployee[emp.ID] * 100 / elapsed
		if rate > 100 {
			rate = 100
		}
		sum += float64(rate)
	}

	return round1(sum / float64(len(employees)))
}

func (s *DashboardServiceImpl) performanceTrend(ctx context.Context) dashboard.PerformanceTrend {
	scores, months := s.activities.MonthlyTrend(ctx)
	trend := dashboard.PerformanceTrend{
		MonthlyScores:    scores,
		Months:           months,
		TrendDescription: "Stable",
	}

	if len(scores) >= 2 {
		trend.TrendDirection = round1(scores[len(scores)-1] - scores[0])
		switch {
		case trend.TrendDirection > 0:
			trend.TrendDescription = "Improving"
		case trend.TrendDirection < 0:
			trend.TrendDescription = "Declining"
		}
	}

	return trend
}

// round1 rounds half up to one decimal place.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

func weekdaysBetween(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}
