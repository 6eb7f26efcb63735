package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db database.Querier
}

func NewPerformanceRepository(db database.Querier) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

const performanceSelect = `
	SELECT id, employee_id, reviewer, score, feedback, review_date, created_at
	FROM performances
`

func scanPerformance(row pgx.Row) (performance.Performance, error) {
	var record performance.Performance
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Reviewer, &record.Score,
		&record.Feedback, &record.ReviewDate, &record.CreatedAt,
	)
	return record, err
}

// Create implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) Create(ctx context.Context, record performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO performances (id, employee_id, reviewer, score, feedback, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, reviewer, score, feedback, review_date, created_at
	`

	created, err := scanPerformance(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Reviewer, record.Score, record.Feedback, record.ReviewDate,
	))
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return created, nil
}

// GetByID implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	q := GetQuerier(ctx, p.db)

	record, err := scanPerformance(q.QueryRow(ctx, performanceSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Performance{}, performance.ErrPerformanceNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance review by id: %w", err)
	}

	return record, nil
}

// List implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) List(ctx context.Context) ([]performance.Performance, error) {
	return p.queryPerformances(ctx, performanceSelect+` ORDER BY review_date DESC, created_at DESC`)
}

// ListByEmployee implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Performance, error) {
	return p.queryPerformances(ctx,
		performanceSelect+` WHERE employee_id = $1 ORDER BY review_date DESC, created_at DESC`,
		employeeID,
	)
}

// GetLatestByEmployee implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) GetLatestByEmployee(ctx context.Context, employeeID string) (*performance.Performance, error) {
	q := GetQuerier(ctx, p.db)

	record, err := scanPerformance(q.QueryRow(ctx,
		performanceSelect+` WHERE employee_id = $1 ORDER BY review_date DESC, created_at DESC LIMIT 1`,
		employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest performance review: %w", err)
	}

	return &record, nil
}

// Delete implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPerformanceNotFound
	}

	return nil
}

func (p *performanceRepositoryImpl) queryPerformances(ctx context.Context, query string, args ...interface{}) ([]performance.Performance, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []performance.Performance
	for rows.Next() {
		record, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
