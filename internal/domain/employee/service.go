package employee

import (
	"context"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
)

// EmployeeService defines the employee-facing operations
type EmployeeService interface {
	// RegisterEmployee creates an employee joining today
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// GetLeaveHistory returns every stored leave of the employee
	GetLeaveHistory(ctx context.Context, id string) ([]leave.LeaveResponse, error)

	// GetLeaveHistoryInRange returns leaves overlapping the range, clipped to it
	GetLeaveHistoryInRange(ctx context.Context, id string, req leave.HistoryRangeRequest) ([]leave.LeaveResponse, error)

	LogExtraWork(ctx context.Context, id string, req extrawork.LogExtraWorkRequest) (extrawork.ExtraWorkResponse, error)
	GetCompOffBalance(ctx context.Context, id string) (extrawork.CompOffBalanceResponse, error)
}
