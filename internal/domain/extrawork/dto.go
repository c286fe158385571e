package extrawork

import (
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
)

type LogExtraWorkRequest struct {
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
}

func (r *LogExtraWorkRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("start_date_time", r.StartDateTime)
	errs.Required("end_date_time", r.EndDateTime)
	return errs.Err()
}

type ExtraWorkResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func NewExtraWorkResponse(w ExtraWork) ExtraWorkResponse {
	return ExtraWorkResponse{
		ID:         w.ID,
		EmployeeID: w.EmployeeID,
		Date:       calendar.FormatDate(w.Date),
	}
}

type CompOffBalanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	CompOffBalance int    `json:"comp_off_balance"`
}
