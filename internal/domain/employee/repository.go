package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Locker serializes writes that belong to a single employee. Repository calls
// made with the ctx passed to fn take part in the same unit of work.
type Locker interface {
	WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error
}
