package leave

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

const (
	paternityCap            = 10
	paternityMaxOccurrences = 2
	paternityMaxDaysFromDOB = 365
)

type paternityPolicy struct {
	calendar *calendar.Calendar
}

func newPaternityPolicy(cal *calendar.Calendar) *paternityPolicy {
	return &paternityPolicy{calendar: cal}
}

func (p *paternityPolicy) Type() leave.Type { return leave.TypePaternity }

func (p *paternityPolicy) Label() string { return "Paternity" }

func (p *paternityPolicy) Balance(Evaluation) int { return paternityCap }

func (p *paternityPolicy) Validate(ev Evaluation) error {
	if !ev.Employee.Gender.Is(employee.Male) {
		return leave.ErrGenderMismatch
	}
	if countOfType(ev.History, leave.TypePaternity) >= paternityMaxOccurrences {
		return leave.ErrMaxOccurrencesExceeded
	}
	if ev.ChildDOB == nil {
		return fmt.Errorf("%w: child date of birth", leave.ErrRequiredDateMissing)
	}

	dob := *ev.ChildDOB
	if ev.Start.Before(dob) || calendar.DaysBetween(dob, ev.End) > paternityMaxDaysFromDOB {
		return leave.ErrChildDOBConstraintViolated
	}
	return nil
}

func (p *paternityPolicy) NetDays(start, end time.Time) (int, error) {
	return workingDays(p.calendar, start, end)
}
