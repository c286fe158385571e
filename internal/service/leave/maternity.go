package leave

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

const (
	maternityCap            = 182
	maternityMaxOccurrences = 2
	maternityMinServedDays  = 80
)

type historyProjector interface {
	Project(history []leave.Leave, from, to time.Time) []leave.Leave
}

type maternityPolicy struct {
	calendar  *calendar.Calendar
	projector historyProjector
}

func newMaternityPolicy(cal *calendar.Calendar, projector historyProjector) *maternityPolicy {
	return &maternityPolicy{calendar: cal, projector: projector}
}

func (p *maternityPolicy) Type() leave.Type { return leave.TypeMaternity }

func (p *maternityPolicy) Label() string { return "Maternity" }

func (p *maternityPolicy) Balance(Evaluation) int { return maternityCap }

func (p *maternityPolicy) Validate(ev Evaluation) error {
	if !ev.Employee.Gender.Is(employee.Female) {
		return leave.ErrGenderMismatch
	}
	if countOfType(ev.History, leave.TypeMaternity) >= maternityMaxOccurrences {
		return leave.ErrMaxOccurrencesExceeded
	}
	if ev.ExpectedDeliveryDate == nil {
		return fmt.Errorf("%w: expected delivery date", leave.ErrRequiredDateMissing)
	}
	delivery := *ev.ExpectedDeliveryDate
	if delivery.Before(ev.Start) {
		return leave.ErrDeliveryDateBeforeStart
	}

	if served := p.servedDays(ev, delivery); served < maternityMinServedDays {
		return fmt.Errorf("%w: %d working days served, %d required", leave.ErrInsufficientTenure, served, maternityMinServedDays)
	}
	return nil
}

// servedDays counts working days in the year before delivery that the
// employee was employed and not on leave.
func (p *maternityPolicy) servedDays(ev Evaluation, delivery time.Time) int {
	from := calendar.Later(ev.Employee.JoiningDate, delivery.AddDate(-1, 0, 0))
	to := calendar.Earlier(ev.Start, ev.Today)
	if from.After(to) {
		return 0
	}

	onLeave := 0
	for _, l := range p.projector.Project(ev.History, from, to) {
		onLeave += l.LeaveCount
	}
	return p.calendar.TotalWorkingDays(from, to) - onLeave
}

// NetDays charges every calendar day, weekends and holidays included.
func (p *maternityPolicy) NetDays(start, end time.Time) (int, error) {
	return calendar.DayCount(start, end), nil
}
