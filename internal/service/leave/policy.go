package leave

import (
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

// Evaluation is everything a policy looks at when judging one request.
type Evaluation struct {
	Employee employee.Employee
	// History holds every stored leave of the employee, any type.
	History []leave.Leave

	Start time.Time
	End   time.Time

	ExpectedDeliveryDate *time.Time
	ChildDOB             *time.Time

	Today time.Time
}

// Policy is the rule set of one leave category.
type Policy interface {
	Type() leave.Type
	Label() string
	// Balance is the number of days the employee may still request.
	Balance(ev Evaluation) int
	// Validate runs the category specific eligibility rules.
	Validate(ev Evaluation) error
	// NetDays is the chargeable day count of [start, end].
	NetDays(start, end time.Time) (int, error)
}

// validateCommon applies the rules shared by every category.
func validateCommon(ev Evaluation) error {
	if ev.Start.After(ev.End) {
		return leave.ErrDateRangeInvalid
	}
	if ev.Start.Before(ev.Employee.JoiningDate) {
		return leave.ErrJoiningDateViolation
	}
	for _, l := range ev.History {
		if calendar.RangeOverlaps(ev.Start, ev.End, l.StartDate, l.EndDate) {
			return leave.ErrOverlapDetected
		}
	}
	return nil
}

func countOfType(history []leave.Leave, t leave.Type) int {
	n := 0
	for _, l := range history {
		if l.Type == t {
			n++
		}
	}
	return n
}

func daysTaken(history []leave.Leave, t leave.Type) int {
	sum := 0
	for _, l := range history {
		if l.Type == t {
			sum += l.LeaveCount
		}
	}
	return sum
}

// workingDays counts chargeable days for categories that skip holidays and
// weekends.
func workingDays(cal *calendar.Calendar, start, end time.Time) (int, error) {
	n := cal.TotalWorkingDays(start, end)
	if n <= 0 {
		return 0, leave.ErrAllDaysNonWorking
	}
	return n, nil
}
