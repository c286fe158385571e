package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_Employees(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	created, err := repo.Create(ctx, employee.Employee{ID: "e1", Name: "Ana", Email: "ana@example.com", Gender: employee.Female})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	exists, err := repo.ExistsByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Create(ctx, employee.Employee{ID: "e2", Email: "Ana@Example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_LeavesRejectOverlap(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := NewEmployeeRepository(s).Create(ctx, employee.Employee{ID: "e1", Email: "a@b.cd"})
	require.NoError(t, err)
	repo := NewLeaveRepository(s)

	_, err = repo.Create(ctx, leave.Leave{ID: "l1", EmployeeID: "e1", Type: leave.TypeOutOfOffice, StartDate: day(2025, 1, 10), EndDate: day(2025, 1, 12)})
	require.NoError(t, err)

	_, err = repo.Create(ctx, leave.Leave{ID: "l2", EmployeeID: "e1", Type: leave.TypeOutOfOffice, StartDate: day(2025, 1, 12), EndDate: day(2025, 1, 13)})
	assert.ErrorIs(t, err, leave.ErrOverlapDetected)

	_, err = repo.Create(ctx, leave.Leave{ID: "l0", EmployeeID: "e1", Type: leave.TypeOutOfOffice, StartDate: day(2025, 1, 2), EndDate: day(2025, 1, 3)})
	require.NoError(t, err)

	_, err = repo.Create(ctx, leave.Leave{ID: "lx", EmployeeID: "nobody", StartDate: day(2025, 1, 2), EndDate: day(2025, 1, 3)})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	leaves, err := repo.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, "l0", leaves[0].ID)
	assert.Equal(t, "l1", leaves[1].ID)
}

func TestStore_ExtraWorkUniquePerDay(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := NewEmployeeRepository(s).Create(ctx, employee.Employee{ID: "e1", Email: "a@b.cd"})
	require.NoError(t, err)
	repo := NewExtraWorkRepository(s)

	_, err = repo.Create(ctx, extrawork.ExtraWork{ID: "w1", EmployeeID: "e1", Date: day(2025, 1, 11)})
	require.NoError(t, err)

	_, err = repo.Create(ctx, extrawork.ExtraWork{ID: "w2", EmployeeID: "e1", Date: day(2025, 1, 11)})
	assert.ErrorIs(t, err, extrawork.ErrAlreadyLogged)

	works, err := repo.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, works, 1)
}
