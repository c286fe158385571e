// Package memory keeps employees, leaves and extra work in process memory.
// It enforces the same constraints as the SQL schemas and backs tests and
// DB_DRIVER=memory development runs.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

type Store struct {
	mu         sync.RWMutex
	employees  map[string]employee.Employee
	emails     map[string]string
	leaves     map[string][]leave.Leave
	extraWorks map[string][]extrawork.ExtraWork
}

func NewStore() *Store {
	return &Store{
		employees:  make(map[string]employee.Employee),
		emails:     make(map[string]string),
		leaves:     make(map[string][]leave.Leave),
		extraWorks: make(map[string][]extrawork.ExtraWork),
	}
}

type employeeRepositoryImpl struct{ s *Store }

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{s: s}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(newEmployee.Email)
	if _, ok := r.s.emails[email]; ok {
		return employee.Employee{}, employee.ErrEmailExists
	}
	r.s.employees[newEmployee.ID] = newEmployee
	r.s.emails[email] = newEmployee.ID
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.emails[strings.ToLower(email)]
	return ok, nil
}

type leaveRepositoryImpl struct{ s *Store }

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{s: s}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[l.EmployeeID]; !ok {
		return leave.Leave{}, employee.ErrEmployeeNotFound
	}
	for _, existing := range r.s.leaves[l.EmployeeID] {
		if calendar.RangeOverlaps(existing.StartDate, existing.EndDate, l.StartDate, l.EndDate) {
			return leave.Leave{}, leave.ErrOverlapDetected
		}
	}
	r.s.leaves[l.EmployeeID] = append(r.s.leaves[l.EmployeeID], l)
	return l, nil
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]leave.Leave, len(r.s.leaves[employeeID]))
	copy(out, r.s.leaves[employeeID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

type extraWorkRepositoryImpl struct{ s *Store }

func NewExtraWorkRepository(s *Store) extrawork.ExtraWorkRepository {
	return &extraWorkRepositoryImpl{s: s}
}

func (r *extraWorkRepositoryImpl) Create(ctx context.Context, w extrawork.ExtraWork) (extrawork.ExtraWork, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[w.EmployeeID]; !ok {
		return extrawork.ExtraWork{}, employee.ErrEmployeeNotFound
	}
	for _, existing := range r.s.extraWorks[w.EmployeeID] {
		if existing.Date.Equal(w.Date) {
			return extrawork.ExtraWork{}, extrawork.ErrAlreadyLogged
		}
	}
	r.s.extraWorks[w.EmployeeID] = append(r.s.extraWorks[w.EmployeeID], w)
	return w, nil
}

func (r *extraWorkRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]extrawork.ExtraWork, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]extrawork.ExtraWork, len(r.s.extraWorks[employeeID]))
	copy(out, r.s.extraWorks[employeeID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
