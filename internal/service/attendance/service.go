package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
)

const lateArrivalCutoffMinutes = 9*60 + 30 // 09:30, query threshold only

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
	locks        *dayLocks
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		employeeRepo:         employeeRepo,
		locks:                newDayLocks(),
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func lockKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockIn, err := time.Parse(time.RFC3339, req.ClockIn)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse clock_in: %w", err)
	}

	var clockOut *time.Time
	if req.ClockOut != nil && *req.ClockOut != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse clock_out: %w", err)
		}
		clockOut = &parsed
	}

	exists, err := s.employeeRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	if clockIn.After(time.Now()) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureClockIn
	}
	if clockOut != nil && clockOut.Before(clockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeIn
	}

	date := dateOf(clockIn)

	key := lockKey(req.EmployeeID, date)
	s.locks.lock(key)
	defer s.locks.unlock(key)

	duplicate, err := s.AttendanceRepository.ExistsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if duplicate {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateForDate
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// RecordClockOut implements attendance.AttendanceService. Closing an open
// record is validated; a record that already has a clock-out is overwritten
// as-is.
func (s *AttendanceServiceImpl) RecordClockOut(ctx context.Context, id string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut, err := time.Parse(time.RFC3339, req.ClockOut)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse clock_out: %w", err)
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	key := lockKey(record.EmployeeID, record.Date)
	s.locks.lock(key)
	defer s.locks.unlock(key)

	if record.ClockOut == nil {
		if clockOut.Before(record.ClockIn) {
			return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeIn
		}
		if clockOut.Sub(record.ClockIn) < 4*time.Hour {
			return attendance.AttendanceResponse{}, attendance.ErrMinimumShiftNotMet
		}
	}

	if err := s.AttendanceRepository.UpdateClockOut(ctx, id, clockOut); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update clock out: %w", err)
	}

	record.ClockOut = &clockOut
	return attendance.ToResponse(record), nil
}

// Delete implements attendance.AttendanceService. Records older than 30 days
// are immutable history and refuse deletion.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cutoff := dateOf(time.Now()).AddDate(0, 0, -30)
	if dateOf(record.Date).Before(cutoff) {
		return attendance.ErrTooOldToDelete
	}

	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	return toResponses(records), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, dateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return toResponses(records), nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return s.ListByDate(ctx, time.Now())
}

// ListByDateRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	start, end = dateOf(start), dateOf(end)
	if start.After(end) {
		return nil, attendance.ErrInvalidDateRange
	}

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date range: %w", err)
	}
	return toResponses(records), nil
}

// ListLateArrivals implements attendance.AttendanceService. The reporting
// cutoff is 09:30, looser than the 09:00 mark that flags a record late.
func (s *AttendanceServiceImpl) ListLateArrivals(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, dateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	late := make([]attendance.AttendanceResponse, 0)
	for _, record := range records {
		if record.ClockIn.Hour()*60+record.ClockIn.Minute() > lateArrivalCutoffMinutes {
			late = append(late, attendance.ToResponse(record))
		}
	}
	return late, nil
}

// ListOvertime implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListOvertime(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, dateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	overtime := make([]attendance.AttendanceResponse, 0)
	for _, record := range records {
		resp := attendance.ToResponse(record)
		if resp.IsOvertime {
			overtime = append(overtime, resp)
		}
	}
	return overtime, nil
}

// GetEmployeeToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dateOf(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for today: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*record)
	return &resp, nil
}

// Rate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Rate(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	start, end = dateOf(start), dateOf(end)

	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return 100, nil
	}

	count, err := s.AttendanceRepository.CountByEmployeeAndDateRange(ctx, employeeID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	rate := int(count) * 100 / days
	if rate > 100 {
		rate = 100
	}
	if rate < 0 {
		rate = 0
	}
	return rate, nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses
}
