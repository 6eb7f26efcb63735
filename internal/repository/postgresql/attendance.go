package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.created_at, a.updated_at, e.name AS employee_name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var record attendance.Attendance
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.ClockIn, &record.ClockOut,
		&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
	)
	return record, err
}

func (a *attendanceRepositoryImpl) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
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

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, clock_in, clock_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, clock_in, clock_out, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.ClockIn, record.ClockOut,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.ClockIn, &created.ClockOut,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	created.EmployeeName = record.EmployeeName
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return record, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx, attendanceSelect+` ORDER BY a.date DESC, a.clock_in DESC`)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx, attendanceSelect+` WHERE a.employee_id = $1 ORDER BY a.date DESC`, employeeID)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx, attendanceSelect+` WHERE a.date = $1 ORDER BY a.clock_in`, date)
}

// ListByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx,
		attendanceSelect+` WHERE a.date BETWEEN $1 AND $2 ORDER BY a.date, a.clock_in`,
		start, end,
	)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record, err := scanAttendance(q.QueryRow(ctx,
		attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`,
		employeeID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &record, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// CountByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE employee_id = $1`, employeeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by employee: %w", err)
	}

	return count, nil
}

// CountByEmployeeAndDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE employee_id = $1 AND date BETWEEN $2 AND $3`,
		employeeID, start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by date range: %w", err)
	}

	return count, nil
}

// UpdateClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpdateClockOut(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx,
		`UPDATE attendances SET clock_out = $1, updated_at = NOW() WHERE id = $2`,
		clockOut, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
