package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/mattn/go-sqlite3"
)

type leaveRepositoryImpl struct {
	s *Store
}

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{s: s}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var overlaps bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM leaves
			WHERE employee_id = ? AND start_date <= ? AND end_date >= ?
		)`,
		l.EmployeeID, formatDate(l.EndDate), formatDate(l.StartDate),
	).Scan(&overlaps)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if overlaps {
		return leave.Leave{}, leave.ErrOverlapDetected
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO leaves (
			id, employee_id, leave_type, start_date, end_date, leave_count,
			expected_delivery_date, child_dob, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.EmployeeID, string(l.Type), formatDate(l.StartDate), formatDate(l.EndDate), l.LeaveCount,
		formatNullableDate(l.ExpectedDeliveryDate), formatNullableDate(l.ChildDOB), formatTimestamp(l.CreatedAt),
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
			return leave.Leave{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, l.EmployeeID)
		}
		return leave.Leave{}, fmt.Errorf("failed to insert leave: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to commit leave: %w", err)
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT id, employee_id, leave_type, start_date, end_date, leave_count,
			expected_delivery_date, child_dob, created_at
		FROM leaves
		WHERE employee_id = ?
		ORDER BY start_date ASC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
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
	return leaves, rows.Err()
}

func scanLeave(row rowScanner) (leave.Leave, error) {
	var (
		l                   leave.Leave
		leaveType           string
		start, end, created string
		delivery, dob       sql.NullString
	)
	err := row.Scan(
		&l.ID, &l.EmployeeID, &leaveType, &start, &end, &l.LeaveCount,
		&delivery, &dob, &created,
	)
	if err != nil {
		return leave.Leave{}, err
	}

	l.Type = leave.Type(leaveType)
	if l.StartDate, err = parseDate(start); err != nil {
		return leave.Leave{}, fmt.Errorf("invalid start_date %q: %w", start, err)
	}
	if l.EndDate, err = parseDate(end); err != nil {
		return leave.Leave{}, fmt.Errorf("invalid end_date %q: %w", end, err)
	}
	if l.ExpectedDeliveryDate, err = parseNullableDate(delivery); err != nil {
		return leave.Leave{}, fmt.Errorf("invalid expected_delivery_date: %w", err)
	}
	if l.ChildDOB, err = parseNullableDate(dob); err != nil {
		return leave.Leave{}, fmt.Errorf("invalid child_dob: %w", err)
	}
	if l.CreatedAt, err = parseTimestamp(created); err != nil {
		return leave.Leave{}, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	return l, nil
}
