package employee

import (
	"context"
	"testing"
	"time"

	"github.com/nexhr/hr-backend-go/internal/domain/attendance"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/domain/performance"
	"github.com/nexhr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	chains    map[string][]string // employee id -> manager chain above it
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		chains:    make(map[string][]string),
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByManager(_ context.Context, managerID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.ManagerID != nil && *emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) ManagerChainContains(_ context.Context, startID string, targetID string) (bool, error) {
	if startID == targetID {
		return true, nil
	}
	for _, id := range f.chains[startID] {
		if id == targetID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAttendanceCounter struct {
	attendance.AttendanceRepository
	counts map[string]int64
}

func (f *fakeAttendanceCounter) CountByEmployee(_ context.Context, employeeID string) (int64, error) {
	return f.counts[employeeID], nil
}

func (f *fakeAttendanceCounter) CountByEmployeeAndDateRange(context.Context, string, time.Time, time.Time) (int64, error) {
	return 0, nil
}

type fakePerformanceLookup struct {
	performance.PerformanceRepository
	latest map[string]int
}

func (f *fakePerformanceLookup) GetLatestByEmployee(_ context.Context, employeeID string) (*performance.Performance, error) {
	score, ok := f.latest[employeeID]
	if !ok {
		return nil, nil
	}
	return &performance.Performance{EmployeeID: employeeID, Score: score}, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testEnv struct {
	svc          employee.EmployeeService
	employees    *fakeEmployeeRepo
	attendances  *fakeAttendanceCounter
	performances *fakePerformanceLookup
}

func newTestEnv() testEnv {
	employees := newFakeEmployeeRepo()
	attendances := &fakeAttendanceCounter{counts: make(map[string]int64)}
	performances := &fakePerformanceLookup{latest: make(map[string]int)}
	svc := NewEmployeeService(employees, attendances, performances, NewHashProjectEstimator(), passthroughTx)
	return testEnv{svc: svc, employees: employees, attendances: attendances, performances: performances}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:        "Ana Lovelace",
		Designation: "Engineer",
		Department:  "Engineering",
		JoinDate:    "2022-06-01",
	}
}

// ===== CREATE =====

func TestEmployeeService_Create_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	resp, err := env.svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ana Lovelace", resp.Name)
	assert.Equal(t, "2022-06-01", resp.JoinDate)
	assert.False(t, resp.IsActive)
	require.NotNil(t, resp.PerformanceScore)
	assert.InDelta(t, 8.5, *resp.PerformanceScore, 0.0001)
	assert.GreaterOrEqual(t, resp.TotalProjects, resp.CompletedProjects)
}

func TestEmployeeService_Create_MissingFields(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	_, err := env.svc.Create(context.Background(), employee.CreateEmployeeRequest{})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	details := validationErrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "department")
	assert.Contains(t, details, "join_date")
}

func TestEmployeeService_Create_FutureJoinDate(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	req := validCreateRequest()
	req.JoinDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	_, err := env.svc.Create(context.Background(), req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "join_date")
}

func TestEmployeeService_Create_UnknownManager(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	managerID := "missing"
	req := validCreateRequest()
	req.ManagerID = &managerID

	_, err := env.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrManagerNotFound)
}

// ===== UPDATE =====

func TestEmployeeService_Update_SelfManagerRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = env.svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		Name:       created.Name,
		Department: created.Department,
		JoinDate:   created.JoinDate,
		ManagerID:  &created.ID,
	})
	assert.ErrorIs(t, err, employee.ErrManagerCycle)
}

func TestEmployeeService_Update_ChainCycleRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	lead, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	report, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// The report already sits in the lead's chain.
	env.employees.chains[report.ID] = []string{lead.ID}

	_, err = env.svc.Update(ctx, lead.ID, employee.UpdateEmployeeRequest{
		Name:       lead.Name,
		Department: lead.Department,
		JoinDate:   lead.JoinDate,
		ManagerID:  &report.ID,
	})
	assert.ErrorIs(t, err, employee.ErrManagerCycle)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	_, err := env.svc.Update(context.Background(), "missing", employee.UpdateEmployeeRequest{
		Name:       "Ana",
		Department: "Engineering",
		JoinDate:   "2022-06-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== DELETE =====

func TestEmployeeService_Delete_BlockedByAttendance(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	env.attendances.counts[created.ID] = 12

	err = env.svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrHasAttendanceRecords)
	assert.Len(t, env.employees.employees, 1)
}

func TestEmployeeService_Delete_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, created.ID))
	assert.Empty(t, env.employees.employees)
}

// ===== ENRICHMENT =====

func TestEmployeeService_Get_ScoreScale(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	env.performances.latest[created.ID] = 87

	resp, err := env.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.PerformanceScore)
	assert.InDelta(t, 8.7, *resp.PerformanceScore, 0.0001)
}

func TestEmployeeService_Get_ActiveNeedsAccountAndRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	userID := "user-1"
	role := "employee"

	created, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	emp := env.employees.employees[created.ID]
	emp.UserID = &userID
	env.employees.employees[created.ID] = emp

	resp, err := env.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive, "account without a role is not active")

	emp.UserRole = &role
	env.employees.employees[created.ID] = emp

	resp, err = env.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestEmployeeService_ListByTenure(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	veteran := validCreateRequest()
	veteran.JoinDate = time.Now().AddDate(-6, 0, -1).Format("2006-01-02")
	_, err := env.svc.Create(ctx, veteran)
	require.NoError(t, err)

	rookie := validCreateRequest()
	rookie.JoinDate = time.Now().AddDate(0, -3, 0).Format("2006-01-02")
	_, err = env.svc.Create(ctx, rookie)
	require.NoError(t, err)

	tenured, err := env.svc.ListByTenure(ctx, 5)
	require.NoError(t, err)
	require.Len(t, tenured, 1)
	assert.Equal(t, 6, tenured[0].TenureYears)
}

func TestEmployeeService_ListLowPerformance(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	low, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	high, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	unrated, err := env.svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	env.performances.latest[low.ID] = 55
	env.performances.latest[high.ID] = 90

	result, err := env.svc.ListLowPerformance(ctx, 70)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, low.ID, result[0].ID)
	assert.NotEqual(t, unrated.ID, result[0].ID)
}
