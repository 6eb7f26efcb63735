package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	performance.PerformanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(
	performanceRepo performance.PerformanceRepository,
	employeeRepo employee.EmployeeRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		PerformanceRepository: performanceRepo,
		employeeRepo:          employeeRepo,
	}
}

// Create implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	reviewDate, err := time.Parse("2006-01-02", req.ReviewDate)
	if err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to parse review date: %w", err)
	}

	exists, err := s.employeeRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return performance.PerformanceResponse{}, employee.ErrEmployeeNotFound
	}

	record := performance.Performance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Reviewer:   req.Reviewer,
		Score:      req.Score,
		Feedback:   req.Feedback,
		ReviewDate: reviewDate,
	}

	created, err := s.PerformanceRepository.Create(ctx, record)
	if err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return performance.ToResponse(created), nil
}

// Get implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Get(ctx context.Context, id string) (performance.PerformanceResponse, error) {
	record, err := s.PerformanceRepository.GetByID(ctx, id)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}
	return performance.ToResponse(record), nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context) ([]performance.PerformanceResponse, error) {
	records, err := s.PerformanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	return toResponses(records), nil
}

// ListByEmployee implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.PerformanceResponse, error) {
	records, err := s.PerformanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews by employee: %w", err)
	}
	return toResponses(records), nil
}

// LatestByEmployee implements performance.PerformanceService.
func (s *PerformanceServiceImpl) LatestByEmployee(ctx context.Context, employeeID string) (*performance.PerformanceResponse, error) {
	record, err := s.PerformanceRepository.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest performance review: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := performance.ToResponse(*record)
	return &resp, nil
}

// Delete implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.PerformanceRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.PerformanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	return nil
}

func toResponses(records []performance.Performance) []performance.PerformanceResponse {
	responses := make([]performance.PerformanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, performance.ToResponse(record))
	}
	return responses
}
