package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.name, e.designation, e.department, e.join_date, e.manager_id, e.user_id,
		e.created_at, e.updated_at, m.name AS manager_name, u.email, u.role
	FROM employees e
	LEFT JOIN employees m ON m.id = e.manager_id
	LEFT JOIN users u ON u.id = e.user_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Designation, &emp.Department, &emp.JoinDate,
		&emp.ManagerID, &emp.UserID, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.ManagerName, &emp.UserEmail, &emp.UserRole,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) queryEmployees(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, designation, department, join_date, manager_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, designation, department, join_date, manager_id, user_id, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Designation, newEmployee.Department,
		newEmployee.JoinDate, newEmployee.ManagerID, newEmployee.UserID,
	).Scan(
		&created.ID, &created.Name, &created.Designation, &created.Department,
		&created.JoinDate, &created.ManagerID, &created.UserID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return e.queryEmployees(ctx, employeeSelect+` ORDER BY e.name`)
}

// ListByManager implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return e.queryEmployees(ctx, employeeSelect+` WHERE e.manager_id = $1 ORDER BY e.name`, managerID)
}

// ListByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return e.queryEmployees(ctx, employeeSelect+` WHERE e.department = $1 ORDER BY e.name`, department)
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, designation = $2, department = $3, join_date = $4, manager_id = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		emp.Name, emp.Designation, emp.Department, emp.JoinDate, emp.ManagerID, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// ManagerChainContains implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ManagerChainContains(ctx context.Context, startID string, targetID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		WITH RECURSIVE chain AS (
			SELECT id, manager_id FROM employees WHERE id = $1
			UNION ALL
			SELECT e.id, e.manager_id
			FROM employees e
			JOIN chain c ON e.id = c.manager_id
		)
		SELECT EXISTS (SELECT 1 FROM chain WHERE id = $2)
	`

	var contains bool
	err := q.QueryRow(ctx, query, startID, targetID).Scan(&contains)
	if err != nil {
		return false, fmt.Errorf("failed to walk manager chain: %w", err)
	}

	return contains, nil
}
