package sqlite

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

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedEmployee(t *testing.T, s *Store, id, email string) employee.Employee {
	t.Helper()
	emp, err := NewEmployeeRepository(s).Create(context.Background(), employee.Employee{
		ID:          id,
		Name:        "Siti Rahma",
		Email:       email,
		Gender:      employee.Female,
		JoiningDate: date(2024, 3, 1),
		CreatedAt:   time.Date(2024, 3, 1, 9, 15, 30, 0, time.UTC),
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewEmployeeRepository(s)

	emp := seedEmployee(t, s, "e1", "siti@example.com")

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, emp, got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	exists, err := repo.ExistsByEmail(ctx, "siti@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, employee.Employee{
		ID:          "e2",
		Name:        "Copy",
		Email:       "siti@example.com",
		Gender:      employee.Male,
		JoiningDate: date(2024, 3, 2),
		CreatedAt:   time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	seedEmployee(t, s, "e3", "budi@example.com")
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLeaveRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedEmployee(t, s, "e1", "siti@example.com")
	repo := NewLeaveRepository(s)

	delivery := date(2025, 4, 20)
	maternity := leave.Leave{
		ID:                   "l2",
		EmployeeID:           "e1",
		Type:                 leave.TypeMaternity,
		StartDate:            date(2025, 4, 1),
		EndDate:              date(2025, 6, 30),
		LeaveCount:           91,
		ExpectedDeliveryDate: &delivery,
		CreatedAt:            time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC),
	}
	ooo := leave.Leave{
		ID:         "l1",
		EmployeeID: "e1",
		Type:       leave.TypeOutOfOffice,
		StartDate:  date(2025, 1, 6),
		EndDate:    date(2025, 1, 8),
		LeaveCount: 3,
		CreatedAt:  time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
	}

	_, err := repo.Create(ctx, maternity)
	require.NoError(t, err)
	_, err = repo.Create(ctx, ooo)
	require.NoError(t, err)

	leaves, err := repo.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []leave.Leave{ooo, maternity}, leaves)

	t.Run("overlap on a shared boundary day", func(t *testing.T) {
		_, err := repo.Create(ctx, leave.Leave{
			ID:         "l3",
			EmployeeID: "e1",
			Type:       leave.TypeOutOfOffice,
			StartDate:  date(2025, 1, 8),
			EndDate:    date(2025, 1, 9),
			LeaveCount: 2,
			CreatedAt:  time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, leave.ErrOverlapDetected)
	})

	t.Run("adjacent range is accepted", func(t *testing.T) {
		_, err := repo.Create(ctx, leave.Leave{
			ID:         "l4",
			EmployeeID: "e1",
			Type:       leave.TypeOutOfOffice,
			StartDate:  date(2025, 1, 9),
			EndDate:    date(2025, 1, 9),
			LeaveCount: 1,
			CreatedAt:  time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := repo.Create(ctx, leave.Leave{
			ID:         "l5",
			EmployeeID: "ghost",
			Type:       leave.TypeOutOfOffice,
			StartDate:  date(2025, 2, 3),
			EndDate:    date(2025, 2, 3),
			LeaveCount: 1,
			CreatedAt:  time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestExtraWorkRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedEmployee(t, s, "e1", "siti@example.com")
	repo := NewExtraWorkRepository(s)

	w := extrawork.ExtraWork{
		ID:         "w1",
		EmployeeID: "e1",
		Date:       date(2025, 6, 14),
		StartedAt:  time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
		EndedAt:    time.Date(2025, 6, 14, 17, 30, 0, 0, time.UTC),
		CreatedAt:  time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
	}
	_, err := repo.Create(ctx, w)
	require.NoError(t, err)

	dup := w
	dup.ID = "w2"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, extrawork.ErrAlreadyLogged)

	works, err := repo.ListByEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []extrawork.ExtraWork{w}, works)

	none, err := repo.ListByEmployee(ctx, "e2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
