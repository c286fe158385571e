package leave

import (
	"context"
)

type LeaveService interface {
	// ApplyLeave validates and records a leave of req.LeaveType for the employee
	ApplyLeave(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	// GetLeaveBalance always reports the out-of-office balance
	GetLeaveBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
	ListLeaveTypes(ctx context.Context) []LeaveTypeResponse
}
