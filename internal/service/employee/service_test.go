package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/lms-backend-go/internal/repository/memory"
	leaveService "github.com/cmlabs-hris/lms-backend-go/internal/service/leave"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// 16-06-2025 is a Monday.
var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service    *EmployeeServiceImpl
	employees  employee.EmployeeRepository
	leaves     leave.LeaveRepository
	extraWorks extrawork.ExtraWorkRepository
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	// 12-06-2025 is a Thursday holiday
	cal := calendar.New([]calendar.Holiday{{Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)}})
	store := memory.NewStore()
	f := &fixture{
		employees:  memory.NewEmployeeRepository(store),
		leaves:     memory.NewLeaveRepository(store),
		extraWorks: memory.NewExtraWorkRepository(store),
	}
	f.service = NewEmployeeService(
		lock.NewKeyed(),
		f.employees,
		f.leaves,
		f.extraWorks,
		leaveService.NewRegistry(cal),
		cal,
		zaptest.NewLogger(t),
		WithClock(func() time.Time { return now }),
	)
	return f
}

func (f *fixture) employee(t *testing.T, joining string) employee.Employee {
	t.Helper()
	id := uuid.Must(uuid.NewV7()).String()
	e, err := f.employees.Create(context.Background(), employee.Employee{
		ID:          id,
		Name:        "Test Employee",
		Email:       id + "@example.com",
		Gender:      employee.Female,
		JoiningDate: mustDate(t, joining),
	})
	require.NoError(t, err)
	return e
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRegisterEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testNow)

	res, err := f.service.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{
		Name:   " Siti Rahma ",
		Email:  "Siti@Example.com",
		Gender: "FEMALE",
	})
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahma", res.Name)
	assert.Equal(t, "siti@example.com", res.Email)
	assert.Equal(t, "female", res.Gender)
	assert.Equal(t, "16-06-2025", res.JoiningDate)
	assert.NotEmpty(t, res.ID)

	got, err := f.service.GetEmployee(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	history, err := f.service.GetLeaveHistory(ctx, res.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = f.service.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{Name: "Other", Email: "siti@example.com", Gender: "male"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = f.service.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{Name: "Other", Email: "other@example.com", Gender: "x"})
	assert.ErrorIs(t, err, employee.ErrInvalidGender)

	_, err = f.service.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{Name: "Budi", Email: "budi@example.com", Gender: "male"})
	require.NoError(t, err)

	all, err := f.service.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testNow)

	_, err := f.service.GetEmployee(ctx, uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.service.GetEmployee(ctx, "42")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.service.GetCompOffBalance(ctx, "42")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetLeaveHistoryInRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testNow)
	emp := f.employee(t, "01-01-2024")

	for _, l := range []leave.Leave{
		{ID: "l1", Type: leave.TypeOutOfOffice, StartDate: mustDate(t, "10-01-2025"), EndDate: mustDate(t, "20-01-2025"), LeaveCount: 7},
		{ID: "l2", Type: leave.TypeOutOfOffice, StartDate: mustDate(t, "03-03-2025"), EndDate: mustDate(t, "04-03-2025"), LeaveCount: 2},
	} {
		l.EmployeeID = emp.ID
		_, err := f.leaves.Create(ctx, l)
		require.NoError(t, err)
	}

	ranged, err := f.service.GetLeaveHistoryInRange(ctx, emp.ID, leave.HistoryRangeRequest{StartDate: "15-01-2025", EndDate: "31-01-2025"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, leave.LeaveResponse{
		ID:         "l1",
		EmployeeID: emp.ID,
		LeaveType:  "ooo",
		StartDate:  "15-01-2025",
		EndDate:    "20-01-2025",
		LeaveCount: 4,
	}, ranged[0])

	// the stored record is untouched
	history, err := f.service.GetLeaveHistory(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "10-01-2025", history[0].StartDate)
	assert.Equal(t, "20-01-2025", history[0].EndDate)
	assert.Equal(t, 7, history[0].LeaveCount)

	_, err = f.service.GetLeaveHistoryInRange(ctx, emp.ID, leave.HistoryRangeRequest{StartDate: "31-01-2025", EndDate: "15-01-2025"})
	assert.ErrorIs(t, err, leave.ErrDateRangeInvalid)

	_, err = f.service.GetLeaveHistoryInRange(ctx, emp.ID, leave.HistoryRangeRequest{StartDate: "15/01/2025", EndDate: "31-01-2025"})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	none, err := f.service.GetLeaveHistoryInRange(ctx, emp.ID, leave.HistoryRangeRequest{StartDate: "01-02-2025", EndDate: "28-02-2025"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLogExtraWork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testNow)
	emp := f.employee(t, "01-06-2025")

	work := func(start, end string) extrawork.LogExtraWorkRequest {
		return extrawork.LogExtraWorkRequest{StartDateTime: start, EndDateTime: end}
	}

	// Saturday
	res, err := f.service.LogExtraWork(ctx, emp.ID, work("14-06-2025 09:00:00", "14-06-2025 17:00:00"))
	require.NoError(t, err)
	assert.Equal(t, "14-06-2025", res.Date)
	assert.Equal(t, emp.ID, res.EmployeeID)

	// weekday holiday
	_, err = f.service.LogExtraWork(ctx, emp.ID, work("12-06-2025 08:00:00", "12-06-2025 18:00:00"))
	require.NoError(t, err)

	cases := []struct {
		name string
		req  extrawork.LogExtraWorkRequest
		want error
	}{
		{"spans two days", work("07-06-2025 22:00:00", "08-06-2025 07:00:00"), extrawork.ErrNotSingleDay},
		{"future day", work("21-06-2025 08:00:00", "21-06-2025 17:00:00"), extrawork.ErrInFuture},
		{"working day", work("13-06-2025 08:00:00", "13-06-2025 17:00:00"), extrawork.ErrWorkingDay},
		{"too short", work("07-06-2025 09:00:00", "07-06-2025 16:59:59"), extrawork.ErrTooShort},
		{"ends before start", work("07-06-2025 17:00:00", "07-06-2025 09:00:00"), extrawork.ErrTooShort},
		{"before joining", work("31-05-2025 08:00:00", "31-05-2025 17:00:00"), extrawork.ErrBeforeJoiningDate},
		{"already logged", work("14-06-2025 10:00:00", "14-06-2025 19:00:00"), extrawork.ErrAlreadyLogged},
		{"bad format", work("2025-06-14 10:00:00", "14-06-2025 19:00:00"), calendar.ErrInvalidDateTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.LogExtraWork(ctx, emp.ID, tc.req)
			assert.ErrorIs(t, err, tc.want)
			if tc.want != calendar.ErrInvalidDateTime {
				assert.ErrorIs(t, err, extrawork.ErrIneligible)
			}
		})
	}

	logged, err := f.extraWorks.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Len(t, logged, 2)
}

func TestLogExtraWork_TodayStillInProgress(t *testing.T) {
	ctx := context.Background()
	// Sunday noon
	f := newFixture(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	emp := f.employee(t, "01-06-2025")

	_, err := f.service.LogExtraWork(ctx, emp.ID, extrawork.LogExtraWorkRequest{
		StartDateTime: "15-06-2025 08:00:00",
		EndDateTime:   "15-06-2025 16:00:00",
	})
	assert.ErrorIs(t, err, extrawork.ErrInFuture)

	_, err = f.service.LogExtraWork(ctx, emp.ID, extrawork.LogExtraWorkRequest{
		StartDateTime: "15-06-2025 02:00:00",
		EndDateTime:   "15-06-2025 10:00:00",
	})
	assert.NoError(t, err)
}

func TestLogExtraWork_NonUTCClock(t *testing.T) {
	ctx := context.Background()
	jakarta := time.FixedZone("WIB", 7*60*60)
	// Sunday 20:00 local, 13:00 UTC
	f := newFixture(t, time.Date(2025, 6, 15, 20, 0, 0, 0, jakarta))
	emp := f.employee(t, "01-06-2025")

	res, err := f.service.LogExtraWork(ctx, emp.ID, extrawork.LogExtraWorkRequest{
		StartDateTime: "15-06-2025 08:00:00",
		EndDateTime:   "15-06-2025 17:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "15-06-2025", res.Date)

	// still running at 20:00 local
	f2 := newFixture(t, time.Date(2025, 6, 14, 20, 0, 0, 0, jakarta))
	emp2 := f2.employee(t, "01-06-2025")
	_, err = f2.service.LogExtraWork(ctx, emp2.ID, extrawork.LogExtraWorkRequest{
		StartDateTime: "14-06-2025 12:00:00",
		EndDateTime:   "14-06-2025 21:00:00",
	})
	assert.ErrorIs(t, err, extrawork.ErrInFuture)
}

func TestGetCompOffBalance_TrailingWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testNow)
	emp := f.employee(t, "01-01-2025")

	for _, d := range []string{"16-05-2025", "17-05-2025", "14-06-2025"} {
		_, err := f.extraWorks.Create(ctx, extrawork.ExtraWork{
			ID:         uuid.Must(uuid.NewV7()).String(),
			EmployeeID: emp.ID,
			Date:       mustDate(t, d),
		})
		require.NoError(t, err)
	}

	// 17-05-2025 is exactly 30 days back and counts, 16-05-2025 is 31 and does not
	res, err := f.service.GetCompOffBalance(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, res.EmployeeID)
	assert.Equal(t, 2, res.CompOffBalance)
}
