package leave

import (
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType            string `json:"leave_type"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	ExpectedDeliveryDate string `json:"expected_delivery_date,omitempty"`
	ChildDOB             string `json:"child_dob,omitempty"`
}

// Validate checks presence only. Malformed dates surface as parse failures
// when the request is evaluated.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("leave_type", r.LeaveType)
	errs.Required("start_date", r.StartDate)
	errs.Required("end_date", r.EndDate)

	switch NormalizeType(r.LeaveType) {
	case TypeMaternity:
		if validator.IsEmpty(r.ExpectedDeliveryDate) {
			errs.Add("expected_delivery_date", "expected_delivery_date is required for maternity leave")
		}
	case TypePaternity:
		if validator.IsEmpty(r.ChildDOB) {
			errs.Add("child_dob", "child_dob is required for paternity leave")
		}
	}

	return errs.Err()
}

type HistoryRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *HistoryRangeRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("start_date", r.StartDate)
	errs.Required("end_date", r.EndDate)
	return errs.Err()
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LeaveCount int    `json:"leave_count"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  string(l.Type),
		StartDate:  calendar.FormatDate(l.StartDate),
		EndDate:    calendar.FormatDate(l.EndDate),
		LeaveCount: l.LeaveCount,
	}
}

type BalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Balance    int    `json:"balance"`
}

type LeaveTypeResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
