package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryProjector clips leave history to a date range.
type HistoryProjector interface {
	Project(history []leave.Leave, from, to time.Time) []leave.Leave
}

type EmployeeServiceImpl struct {
	locker        employee.Locker
	employeeRepo  employee.EmployeeRepository
	leaveRepo     leave.LeaveRepository
	extraWorkRepo extrawork.ExtraWorkRepository
	projector     HistoryProjector
	calendar      *calendar.Calendar
	logger        *zap.Logger
	now           func() time.Time
}

type Option func(*EmployeeServiceImpl)

// WithClock overrides the time source used for "now" and "today".
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeServiceImpl) {
		s.now = now
	}
}

func NewEmployeeService(
	locker employee.Locker,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRepository,
	extraWorkRepository extrawork.ExtraWorkRepository,
	projector HistoryProjector,
	cal *calendar.Calendar,
	logger *zap.Logger,
	opts ...Option,
) *EmployeeServiceImpl {
	s := &EmployeeServiceImpl{
		locker:        locker,
		employeeRepo:  employeeRepository,
		leaveRepo:     leaveRepository,
		extraWorkRepo: extraWorkRepository,
		projector:     projector,
		calendar:      cal,
		logger:        logger.Named("employee.service"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RegisterEmployee(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	gender, ok := employee.ParseGender(req.Gender)
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrInvalidGender
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.employeeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	now := s.now()
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:          id.String(),
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Gender:      gender,
		JoiningDate: calendar.DateOf(now),
		CreatedAt:   now,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee registered", zap.String("employee_id", created.ID))
	return employee.NewEmployeeResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// GetLeaveHistory implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetLeaveHistory(ctx context.Context, id string) ([]leave.LeaveResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return toLeaveResponses(history), nil
}

// GetLeaveHistoryInRange implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetLeaveHistoryInRange(ctx context.Context, id string, req leave.HistoryRangeRequest) ([]leave.LeaveResponse, error) {
	from, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	to, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}

	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, leave.ErrDateRangeInvalid
	}

	history, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return toLeaveResponses(s.projector.Project(history, from, to)), nil
}

// LogExtraWork implements employee.EmployeeService.
func (s *EmployeeServiceImpl) LogExtraWork(ctx context.Context, id string, req extrawork.LogExtraWorkRequest) (extrawork.ExtraWorkResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return extrawork.ExtraWorkResponse{}, err
	}

	startedAt, err := calendar.ParseDateTime(req.StartDateTime)
	if err != nil {
		return extrawork.ExtraWorkResponse{}, fmt.Errorf("start_date_time: %w", err)
	}
	endedAt, err := calendar.ParseDateTime(req.EndDateTime)
	if err != nil {
		return extrawork.ExtraWorkResponse{}, fmt.Errorf("end_date_time: %w", err)
	}

	log := s.logger.With(
		zap.String("employee_id", emp.ID),
		zap.String("start_date_time", req.StartDateTime),
		zap.String("end_date_time", req.EndDateTime),
	)

	workDate, err := s.checkExtraWork(emp, startedAt, endedAt)
	if err != nil {
		log.Warn("Extra work rejected", zap.Error(err))
		return extrawork.ExtraWorkResponse{}, err
	}

	var created extrawork.ExtraWork
	err = s.locker.WithEmployeeLock(ctx, emp.ID, func(ctx context.Context) error {
		logged, err := s.extraWorkRepo.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to list extra work: %w", err)
		}
		for _, w := range logged {
			if w.Date.Equal(workDate) {
				return extrawork.ErrAlreadyLogged
			}
		}

		wid, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate extra work id: %w", err)
		}

		created, err = s.extraWorkRepo.Create(ctx, extrawork.ExtraWork{
			ID:         wid.String(),
			EmployeeID: emp.ID,
			Date:       workDate,
			StartedAt:  startedAt,
			EndedAt:    endedAt,
			CreatedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create extra work: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, extrawork.ErrIneligible) {
			log.Warn("Extra work rejected", zap.Error(err))
		} else {
			log.Error("Failed to log extra work", zap.Error(err))
		}
		return extrawork.ExtraWorkResponse{}, err
	}

	log.Info("Extra work logged", zap.String("extra_work_id", created.ID))
	return extrawork.NewExtraWorkResponse(created), nil
}

// checkExtraWork applies the eligibility rules that need no stored state and
// returns the calendar day the work belongs to.
func (s *EmployeeServiceImpl) checkExtraWork(emp employee.Employee, startedAt, endedAt time.Time) (time.Time, error) {
	workDate := calendar.DateOf(startedAt)
	now := calendar.WallClock(s.now())

	if !workDate.Equal(calendar.DateOf(endedAt)) {
		return time.Time{}, extrawork.ErrNotSingleDay
	}
	if workDate.After(calendar.DateOf(now)) || endedAt.After(now) {
		return time.Time{}, extrawork.ErrInFuture
	}
	if s.calendar.IsWorkingDay(workDate) {
		return time.Time{}, extrawork.ErrWorkingDay
	}
	if endedAt.Sub(startedAt) < extrawork.MinimumDuration {
		return time.Time{}, extrawork.ErrTooShort
	}
	if workDate.Before(emp.JoiningDate) {
		return time.Time{}, extrawork.ErrBeforeJoiningDate
	}
	return workDate, nil
}

// GetCompOffBalance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetCompOffBalance(ctx context.Context, id string) (extrawork.CompOffBalanceResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return extrawork.CompOffBalanceResponse{}, err
	}

	logged, err := s.extraWorkRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return extrawork.CompOffBalanceResponse{}, fmt.Errorf("failed to list extra work: %w", err)
	}

	now := s.now()
	balance := 0
	for _, w := range logged {
		if calendar.DaysBetween(w.Date, now) <= extrawork.CompOffWindowDays {
			balance++
		}
	}

	return extrawork.CompOffBalanceResponse{
		EmployeeID:     emp.ID,
		CompOffBalance: balance,
	}, nil
}

func (s *EmployeeServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.GetByID(ctx, id)
}

func toLeaveResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}
	return responses
}
