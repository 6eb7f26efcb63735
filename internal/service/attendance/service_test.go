package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	record, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.Date.Equal(date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if !record.Date.Before(start) && !record.Date.After(end) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.Date.Equal(date) {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	record, err := f.GetByEmployeeAndDate(ctx, employeeID, date)
	return record != nil, err
}

func (f *fakeAttendanceRepo) CountByEmployee(_ context.Context, employeeID string) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountByEmployeeAndDateRange(_ context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.EmployeeID == employeeID && !record.Date.Before(start) && !record.Date.After(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) UpdateClockOut(_ context.Context, id string, clockOut time.Time) error {
	record, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	record.ClockOut = &clockOut
	f.records[id] = record
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeChecker struct {
	employee.EmployeeRepository
	ids map[string]bool
}

func (f *fakeEmployeeChecker) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func newService(employeeIDs ...string) (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	ids := make(map[string]bool)
	for _, id := range employeeIDs {
		ids[id] = true
	}
	return NewAttendanceService(repo, &fakeEmployeeChecker{ids: ids}), repo
}

func seed(repo *fakeAttendanceRepo, id, employeeID string, clockIn time.Time, clockOut *time.Time) {
	repo.records[id] = attendance.Attendance{
		ID:         id,
		EmployeeID: employeeID,
		Date:       dateOf(clockIn),
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}
}

func ptr(s string) *string { return &s }

// ===== CREATE =====

func TestAttendanceService_Create_OnTimeFullDay(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	resp, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    "2025-03-10T08:50:00Z",
		ClockOut:   ptr("2025-03-10T17:30:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsLate)
	assert.False(t, resp.IsOvertime)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.TotalMinutes)
	assert.Equal(t, 520, *resp.TotalMinutes)
}

func TestAttendanceService_Create_LateWithOvertime(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	resp, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    "2025-03-10T09:15:00Z",
		ClockOut:   ptr("2025-03-10T18:45:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.True(t, resp.IsLate)
	assert.True(t, resp.IsOvertime)
	assert.InDelta(t, 0.75, resp.OvertimeHours, 0.0001)
}

func TestAttendanceService_Create_OpenRecordIsPresent(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	resp, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    "2025-03-10T09:40:00Z",
	})
	require.NoError(t, err)

	// Lateness alone does not set LATE while the record is still open.
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.True(t, resp.IsLate)
	assert.Nil(t, resp.ClockOut)
	assert.Nil(t, resp.TotalMinutes)
}

func TestAttendanceService_Create_DuplicateDate(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")
	ctx := context.Background()

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    "2025-03-10T08:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    "2025-03-10T09:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateForDate)
}

func TestAttendanceService_Create_FutureClockIn(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		ClockIn:    time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, attendance.ErrFutureClockIn)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-2",
		ClockIn:    "2025-03-10T08:00:00Z",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Create_MissingFields(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrFutureClockIn)
}

// ===== CLOCK OUT =====

func TestAttendanceService_RecordClockOut_MinimumShift(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")
	ctx := context.Background()

	clockIn := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	seed(repo, "att-1", "emp-1", clockIn, nil)

	// 3h59m is too short.
	_, err := svc.RecordClockOut(ctx, "att-1", attendance.ClockOutRequest{
		ClockOut: "2025-03-10T13:59:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrMinimumShiftNotMet)

	// Exactly 4h closes the record.
	resp, err := svc.RecordClockOut(ctx, "att-1", attendance.ClockOutRequest{
		ClockOut: "2025-03-10T14:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, resp.TotalMinutes)
	assert.Equal(t, 240, *resp.TotalMinutes)
}

func TestAttendanceService_RecordClockOut_BeforeClockIn(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")

	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seed(repo, "att-1", "emp-1", clockIn, nil)

	_, err := svc.RecordClockOut(context.Background(), "att-1", attendance.ClockOutRequest{
		ClockOut: "2025-03-10T08:30:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeIn)
}

func TestAttendanceService_RecordClockOut_OverwritesClosedRecord(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")

	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)
	seed(repo, "att-1", "emp-1", clockIn, &clockOut)

	// A closed record takes the new value as-is, even below the minimum shift.
	resp, err := svc.RecordClockOut(context.Background(), "att-1", attendance.ClockOutRequest{
		ClockOut: "2025-03-10T10:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
}

func TestAttendanceService_RecordClockOut_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	_, err := svc.RecordClockOut(context.Background(), "missing", attendance.ClockOutRequest{
		ClockOut: "2025-03-10T17:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== DELETE =====

func TestAttendanceService_Delete_RecentRecord(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")

	clockIn := time.Now().AddDate(0, 0, -10)
	seed(repo, "att-1", "emp-1", clockIn, nil)

	require.NoError(t, svc.Delete(context.Background(), "att-1"))
	assert.Empty(t, repo.records)
}

func TestAttendanceService_Delete_TooOld(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")

	clockIn := time.Now().AddDate(0, 0, -40)
	seed(repo, "att-1", "emp-1", clockIn, nil)

	err := svc.Delete(context.Background(), "att-1")
	assert.ErrorIs(t, err, attendance.ErrTooOldToDelete)
	assert.Len(t, repo.records, 1)
}

func TestAttendanceService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== QUERIES =====

func TestAttendanceService_ListLateArrivals_CutoffAt0930(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1", "emp-2")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seed(repo, "att-1", "emp-1", day.Add(9*time.Hour+15*time.Minute), nil)
	seed(repo, "att-2", "emp-2", day.Add(9*time.Hour+45*time.Minute), nil)

	late, err := svc.ListLateArrivals(context.Background(), day)
	require.NoError(t, err)

	// 09:15 is late for status purposes but under the 09:30 reporting cutoff.
	require.Len(t, late, 1)
	assert.Equal(t, "att-2", late[0].ID)
}

func TestAttendanceService_ListOvertime(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1", "emp-2")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	earlyOut := day.Add(17*time.Hour + 30*time.Minute)
	lateOut := day.Add(18*time.Hour + 30*time.Minute)
	seed(repo, "att-1", "emp-1", day.Add(9*time.Hour), &earlyOut)
	seed(repo, "att-2", "emp-2", day.Add(9*time.Hour), &lateOut)

	overtime, err := svc.ListOvertime(context.Background(), day)
	require.NoError(t, err)

	require.Len(t, overtime, 1)
	assert.Equal(t, "att-2", overtime[0].ID)
	assert.InDelta(t, 0.5, overtime[0].OvertimeHours, 0.0001)
}

func TestAttendanceService_ListByDateRange_Invalid(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := svc.ListByDateRange(context.Background(), start, end)
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

// ===== RATE =====

func TestAttendanceService_Rate(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	for i := 0; i < 15; i++ {
		day := start.AddDate(0, 0, i)
		seed(repo, day.Format("2006-01-02"), "emp-1", day.Add(9*time.Hour), nil)
	}

	rate, err := svc.Rate(ctx, "emp-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 50, rate)
}

func TestAttendanceService_Rate_ZeroSpan(t *testing.T) {
	t.Parallel()
	svc, _ := newService("emp-1")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rate, err := svc.Rate(context.Background(), "emp-1", day, day)
	require.NoError(t, err)
	assert.Equal(t, 100, rate)
}

func TestAttendanceService_Rate_ClampedAt100(t *testing.T) {
	t.Parallel()
	svc, repo := newService("emp-1")

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	for i := 0; i < 3; i++ {
		day := start.AddDate(0, 0, i)
		seed(repo, day.Format("2006-01-02"), "emp-1", day.Add(9*time.Hour), nil)
	}

	rate, err := svc.Rate(context.Background(), "emp-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 100, rate)
}
