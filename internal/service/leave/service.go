package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeaveServiceImpl struct {
	locker       employee.Locker
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	registry     *Registry
	logger       *zap.Logger
	now          func() time.Time
}

type Option func(*LeaveServiceImpl)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *LeaveServiceImpl) {
		s.now = now
	}
}

func NewLeaveService(
	locker employee.Locker,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRepository,
	registry *Registry,
	logger *zap.Logger,
	opts ...Option,
) *LeaveServiceImpl {
	s := &LeaveServiceImpl{
		locker:       locker,
		employeeRepo: employeeRepository,
		leaveRepo:    leaveRepository,
		registry:     registry,
		logger:       logger.Named("leave.service"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	policy, err := s.registry.Lookup(req.LeaveType)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	ev, err := parseRequest(req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	ev.Employee = emp
	ev.Today = calendar.DateOf(s.now())

	log := s.logger.With(
		zap.String("employee_id", emp.ID),
		zap.String("leave_type", string(policy.Type())),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	var created leave.Leave
	err = s.locker.WithEmployeeLock(ctx, emp.ID, func(ctx context.Context) error {
		history, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to list leaves: %w", err)
		}
		ev.History = history

		if err := validateCommon(ev); err != nil {
			return err
		}
		if err := policy.Validate(ev); err != nil {
			return err
		}

		netDays, err := policy.NetDays(ev.Start, ev.End)
		if err != nil {
			return err
		}
		if balance := policy.Balance(ev); netDays > balance {
			return fmt.Errorf("%w: requested %d, available %d", leave.ErrInsufficientBalance, netDays, balance)
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate leave id: %w", err)
		}

		created, err = s.leaveRepo.Create(ctx, leave.Leave{
			ID:                   id.String(),
			EmployeeID:           emp.ID,
			Type:                 policy.Type(),
			StartDate:            ev.Start,
			EndDate:              ev.End,
			LeaveCount:           netDays,
			ExpectedDeliveryDate: ev.ExpectedDeliveryDate,
			ChildDOB:             ev.ChildDOB,
			CreatedAt:            s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, leave.ErrPolicyViolation) {
			log.Warn("Leave request rejected", zap.Error(err))
		} else {
			log.Error("Failed to apply leave", zap.Error(err))
		}
		return leave.LeaveResponse{}, err
	}

	log.Info("Leave applied", zap.String("leave_id", created.ID), zap.Int("leave_count", created.LeaveCount))
	return leave.NewLeaveResponse(created), nil
}

// GetLeaveBalance implements leave.LeaveService. The balance is always the
// out-of-office balance.
func (s *LeaveServiceImpl) GetLeaveBalance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	history, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	policy, err := s.registry.Lookup(string(leave.TypeOutOfOffice))
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	balance := policy.Balance(Evaluation{
		Employee: emp,
		History:  history,
		Today:    calendar.DateOf(s.now()),
	})

	return leave.BalanceResponse{
		EmployeeID: emp.ID,
		LeaveType:  string(policy.Type()),
		Balance:    balance,
	}, nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) []leave.LeaveTypeResponse {
	policies := s.registry.Policies()
	types := make([]leave.LeaveTypeResponse, 0, len(policies))
	for _, p := range policies {
		types = append(types, leave.LeaveTypeResponse{
			Key:   string(p.Type()),
			Label: p.Label(),
		})
	}
	return types
}

func (s *LeaveServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func parseRequest(req leave.ApplyLeaveRequest) (Evaluation, error) {
	var ev Evaluation
	var err error

	if ev.Start, err = calendar.ParseDate(req.StartDate); err != nil {
		return Evaluation{}, fmt.Errorf("start_date: %w", err)
	}
	if ev.End, err = calendar.ParseDate(req.EndDate); err != nil {
		return Evaluation{}, fmt.Errorf("end_date: %w", err)
	}
	if ev.ExpectedDeliveryDate, err = parseOptionalDate(req.ExpectedDeliveryDate); err != nil {
		return Evaluation{}, fmt.Errorf("expected_delivery_date: %w", err)
	}
	if ev.ChildDOB, err = parseOptionalDate(req.ChildDOB); err != nil {
		return Evaluation{}, fmt.Errorf("child_dob: %w", err)
	}

	return ev, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if validator.IsEmpty(s) {
		return nil, nil
	}
	t, err := calendar.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
