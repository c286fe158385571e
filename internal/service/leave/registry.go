package leave

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

// Registry maps leave type keys to their policies. It is built once and never
// changes afterwards.
type Registry struct {
	policies map[leave.Type]Policy
	order    []leave.Type
}

func NewRegistry(cal *calendar.Calendar) *Registry {
	r := &Registry{policies: make(map[leave.Type]Policy, 3)}
	r.register(newOutOfOfficePolicy(cal))
	r.register(newMaternityPolicy(cal, r))
	r.register(newPaternityPolicy(cal))
	return r
}

func (r *Registry) register(p Policy) {
	r.policies[p.Type()] = p
	r.order = append(r.order, p.Type())
}

// Lookup resolves a raw key, ignoring surrounding space and letter case.
func (r *Registry) Lookup(key string) (Policy, error) {
	p, ok := r.policies[leave.NormalizeType(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", leave.ErrUnknownLeaveType, key)
	}
	return p, nil
}

// Policies lists the registered policies in registration order.
func (r *Registry) Policies() []Policy {
	out := make([]Policy, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.policies[t])
	}
	return out
}

// Project returns the leaves overlapping [from, to], each clipped to the range
// with its count recomputed by its own policy. The input is left untouched. A
// clipped span without a single chargeable day counts as zero.
func (r *Registry) Project(history []leave.Leave, from, to time.Time) []leave.Leave {
	projected := make([]leave.Leave, 0, len(history))
	for _, l := range history {
		start, end, ok := calendar.Intersect(l.StartDate, l.EndDate, from, to)
		if !ok {
			continue
		}

		clipped := l
		clipped.StartDate = start
		clipped.EndDate = end

		if p, ok := r.policies[l.Type]; ok {
			n, err := p.NetDays(start, end)
			if errors.Is(err, leave.ErrAllDaysNonWorking) {
				n = 0
			}
			clipped.LeaveCount = n
		}

		projected = append(projected, clipped)
	}
	return projected
}
