package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_ExistsByEmployeeAndDate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)")).
		WithArgs("emp-1", date).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmployeeAndDate(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateClockOut(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	clockOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendances SET clock_out = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(clockOut, "att-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateClockOut(context.Background(), "att-1", clockOut))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateClockOut_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	clockOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendances SET clock_out = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(clockOut, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateClockOut(context.Background(), "missing", clockOut)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendances WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CountByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attendances WHERE employee_id = $1")).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
