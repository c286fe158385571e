package leave

import (
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

type outOfOfficePolicy struct {
	calendar *calendar.Calendar
}

func newOutOfOfficePolicy(cal *calendar.Calendar) *outOfOfficePolicy {
	return &outOfOfficePolicy{calendar: cal}
}

func (p *outOfOfficePolicy) Type() leave.Type { return leave.TypeOutOfOffice }

func (p *outOfOfficePolicy) Label() string { return "Out Of Office" }

// Balance accrues two days for every month left in the joining year and every
// month of each later year, plus a first-month credit of two days when the
// employee joined in the first half of the month and one day otherwise.
func (p *outOfOfficePolicy) Balance(ev Evaluation) int {
	joining := ev.Employee.JoiningDate
	elapsedMonths := (12 - int(joining.Month())) + 12*(ev.Today.Year()-joining.Year())

	base := 2
	if joining.Day() > 15 {
		base = 1
	}

	return base + 2*elapsedMonths - daysTaken(ev.History, leave.TypeOutOfOffice)
}

func (p *outOfOfficePolicy) Validate(ev Evaluation) error {
	return nil
}

func (p *outOfOfficePolicy) NetDays(start, end time.Time) (int, error) {
	return workingDays(p.calendar, start, end)
}
