package extrawork

import "context"

type ExtraWorkRepository interface {
	Create(ctx context.Context, work ExtraWork) (ExtraWork, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ExtraWork, error)
}
