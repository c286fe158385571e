package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, employee_id, leave_type, start_date, end_date, leave_count,
			expected_delivery_date, child_dob, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, leave_type, start_date, end_date, leave_count,
			expected_delivery_date, child_dob, created_at
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, string(l.Type), l.StartDate, l.EndDate, l.LeaveCount,
		l.ExpectedDeliveryDate, l.ChildDOB, l.CreatedAt,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case exclusionViolationCode:
			return leave.Leave{}, leave.ErrOverlapDetected
		case foreignKeyViolationCode:
			return leave.Leave{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, l.EmployeeID)
		}
		return leave.Leave{}, err
	}
	return created, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, leave_count,
			expected_delivery_date, child_dob, created_at
		FROM leaves
		WHERE employee_id = $1
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var (
		l             leave.Leave
		leaveType     string
		start, end    time.Time
		delivery, dob pgtype.Date
	)
	err := row.Scan(
		&l.ID, &l.EmployeeID, &leaveType, &start, &end, &l.LeaveCount,
		&delivery, &dob, &l.CreatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	l.Type = leave.Type(leaveType)
	l.StartDate = calendarDate(start)
	l.EndDate = calendarDate(end)
	l.ExpectedDeliveryDate = nullableDate(delivery)
	l.ChildDOB = nullableDate(dob)
	return l, nil
}

func nullableDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := calendarDate(d.Time)
	return &t
}

// calendarDate normalizes a DATE column to UTC midnight.
func calendarDate(t time.Time) time.Time {
	return calendar.DateOf(t)
}
