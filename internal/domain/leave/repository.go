package leave

import "context"

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
}
