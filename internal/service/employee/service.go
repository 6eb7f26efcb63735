package employee

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
)

// defaultPerformanceScore backfills employees without any review yet, on the
// 0-10 display scale.
const defaultPerformanceScore = 8.5

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	performanceRepo performance.PerformanceRepository
	estimator       employee.ProjectEstimator
	tx              database.TxRunner
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	performanceRepo performance.PerformanceRepository,
	estimator employee.ProjectEstimator,
	tx database.TxRunner,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		attendanceRepo:     attendanceRepo,
		performanceRepo:    performanceRepo,
		estimator:          estimator,
		tx:                 tx,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	if req.ManagerID != nil {
		exists, err := s.EmployeeRepository.ExistsByID(ctx, *req.ManagerID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check manager existence: %w", err)
		}
		if !exists {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
	}

	record := employee.Employee{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		JoinDate:    joinDate,
		ManagerID:   req.ManagerID,
		UserID:      req.UserID,
	}

	created, err := s.EmployeeRepository.Create(ctx, record)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.enrich(ctx, created), nil
}

// Update implements employee.EmployeeService. Manager reassignment is
// rejected when the new manager's chain already contains the employee.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	record, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if *req.ManagerID == id {
			return employee.EmployeeResponse{}, employee.ErrManagerCycle
		}

		exists, err := s.EmployeeRepository.ExistsByID(ctx, *req.ManagerID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check manager existence: %w", err)
		}
		if !exists {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}

		inChain, err := s.EmployeeRepository.ManagerChainContains(ctx, *req.ManagerID, id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check manager chain: %w", err)
		}
		if inChain {
			return employee.EmployeeResponse{}, employee.ErrManagerCycle
		}
	}

	record.Name = req.Name
	record.Designation = req.Designation
	record.Department = req.Department
	record.JoinDate = joinDate
	record.ManagerID = req.ManagerID

	if err := s.EmployeeRepository.Update(ctx, record); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.enrich(ctx, updated), nil
}

// Delete implements employee.EmployeeService. Employees with attendance
// history cannot be removed; the check and the delete share a transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tx(ctx, func(ctx context.Context) error {
		exists, err := s.EmployeeRepository.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}

		count, err := s.attendanceRepo.CountByEmployee(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count attendance records: %w", err)
		}
		if count > 0 {
			return employee.ErrHasAttendanceRecords
		}

		if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}

		return nil
	})
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	record, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.enrich(ctx, record), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	records, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return s.enrichAll(ctx, records), nil
}

// ListByManager implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByManager(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	records, err := s.EmployeeRepository.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by manager: %w", err)
	}
	return s.enrichAll(ctx, records), nil
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	records, err := s.EmployeeRepository.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by department: %w", err)
	}
	return s.enrichAll(ctx, records), nil
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]employee.EmployeeResponse, 0, len(all))
	for _, resp := range all {
		if resp.IsActive {
			active = append(active, resp)
		}
	}
	return active, nil
}

// ListLowPerformance implements employee.EmployeeService. The threshold is on
// the stored 0-100 scale; unrated employees are not reported.
func (s *EmployeeServiceImpl) ListLowPerformance(ctx context.Context, threshold int) ([]employee.EmployeeResponse, error) {
	records, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	low := make([]employee.EmployeeResponse, 0)
	for _, record := range records {
		latest, err := s.performanceRepo.GetLatestByEmployee(ctx, record.ID)
		if err != nil || latest == nil {
			continue
		}
		if latest.Score < threshold {
			low = append(low, s.enrich(ctx, record))
		}
	}
	return low, nil
}

// ListByTenure implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByTenure(ctx context.Context, years int) ([]employee.EmployeeResponse, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	tenured := make([]employee.EmployeeResponse, 0)
	for _, resp := range all {
		if resp.TenureYears >= years {
			tenured = append(tenured, resp)
		}
	}
	return tenured, nil
}

// enrich builds the response view: stored columns plus derived performance,
// attendance and project metrics. Lookups that fail fall back to defaults so
// a broken metric never hides the employee.
func (s *EmployeeServiceImpl) enrich(ctx context.Context, record employee.Employee) employee.EmployeeResponse {
	score := defaultPerformanceScore
	if latest, err := s.performanceRepo.GetLatestByEmployee(ctx, record.ID); err == nil && latest != nil {
		score = float64(latest.Score) / 10.0
	}

	now := time.Now()
	rate := 100
	if days := int(now.Sub(record.JoinDate).Hours() / 24); days > 0 {
		start := now.AddDate(0, -1, 0)
		if start.Before(record.JoinDate) {
			start = record.JoinDate
		}
		if span := int(now.Sub(start).Hours() / 24); span > 0 {
			if count, err := s.attendanceRepo.CountByEmployeeAndDateRange(ctx, record.ID, start, now); err == nil {
				rate = int(count) * 100 / span
				if rate > 100 {
					rate = 100
				}
				if rate < 0 {
					rate = 0
				}
			}
		}
	}

	return employee.EmployeeResponse{
		ID:                record.ID,
		Name:              record.Name,
		Designation:       record.Designation,
		Department:        record.Department,
		JoinDate:          record.JoinDate.Format("2006-01-02"),
		Email:             record.UserEmail,
		Phone:             phoneFor(record.ID),
		ManagerID:         record.ManagerID,
		ManagerName:       record.ManagerName,
		PerformanceScore:  &score,
		AttendanceRate:    rate,
		IsActive:          record.UserID != nil && record.UserRole != nil,
		TotalProjects:     s.estimator.TotalProjects(record.ID),
		CompletedProjects: s.estimator.CompletedProjects(record.ID),
		ProfileImageURL:   avatarURL(record.Name),
		TenureYears:       tenureYears(record.JoinDate, now),
	}
}

func (s *EmployeeServiceImpl) enrichAll(ctx context.Context, records []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.enrich(ctx, record))
	}
	return responses
}

// phoneFor is a stable placeholder until contact details are stored.
func phoneFor(employeeID string) string {
	h := hashOf(employeeID + "/phone")
	return fmt.Sprintf("+62 812-%04d-%04d", h%10000, (h/10000)%10000)
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func tenureYears(joinDate, now time.Time) int {
	years := now.Year() - joinDate.Year()
	anniversary := joinDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
