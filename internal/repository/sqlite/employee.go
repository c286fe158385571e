package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/mattn/go-sqlite3"
)

type employeeRepositoryImpl struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{s: s}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row := r.s.db.QueryRowContext(ctx, `
		SELECT id, name, email, gender, joining_date, created_at
		FROM employees WHERE id = ?`, id)

	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, gender, joining_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, string(e.Gender), formatDate(e.JoiningDate), formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT id, name, email, gender, joining_date, created_at
		FROM employees ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var exists bool
	err := r.s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var (
		emp              employee.Employee
		gender           string
		joining, created string
	)
	if err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &gender, &joining, &created); err != nil {
		return employee.Employee{}, err
	}

	var err error
	if emp.JoiningDate, err = parseDate(joining); err != nil {
		return employee.Employee{}, fmt.Errorf("invalid joining_date %q: %w", joining, err)
	}
	if emp.CreatedAt, err = parseTimestamp(created); err != nil {
		return employee.Employee{}, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	emp.Gender = employee.Gender(gender)
	return emp, nil
}
