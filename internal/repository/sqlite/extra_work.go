package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/mattn/go-sqlite3"
)

type extraWorkRepositoryImpl struct {
	s *Store
}

func NewExtraWorkRepository(s *Store) extrawork.ExtraWorkRepository {
	return &extraWorkRepositoryImpl{s: s}
}

func (r *extraWorkRepositoryImpl) Create(ctx context.Context, w extrawork.ExtraWork) (extrawork.ExtraWork, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO extra_works (id, employee_id, work_date, started_at, ended_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.EmployeeID, formatDate(w.Date),
		formatTimestamp(w.StartedAt), formatTimestamp(w.EndedAt), formatTimestamp(w.CreatedAt),
	)
	if err != nil {
		switch {
		case isConstraint(err, sqlite3.ErrConstraintUnique):
			return extrawork.ExtraWork{}, extrawork.ErrAlreadyLogged
		case isConstraint(err, sqlite3.ErrConstraintForeignKey):
			return extrawork.ExtraWork{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, w.EmployeeID)
		}
		return extrawork.ExtraWork{}, fmt.Errorf("failed to insert extra work: %w", err)
	}
	return w, nil
}

func (r *extraWorkRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]extrawork.ExtraWork, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT id, employee_id, work_date, started_at, ended_at, created_at
		FROM extra_works
		WHERE employee_id = ?
		ORDER BY work_date ASC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra work: %w", err)
	}
	defer rows.Close()

	works := []extrawork.ExtraWork{}
	for rows.Next() {
		var (
			w                             extrawork.ExtraWork
			date, started, ended, created string
		)
		if err := rows.Scan(&w.ID, &w.EmployeeID, &date, &started, &ended, &created); err != nil {
			return nil, err
		}
		if w.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("invalid work_date %q: %w", date, err)
		}
		if w.StartedAt, err = parseTimestamp(started); err != nil {
			return nil, fmt.Errorf("invalid started_at %q: %w", started, err)
		}
		if w.EndedAt, err = parseTimestamp(ended); err != nil {
			return nil, fmt.Errorf("invalid ended_at %q: %w", ended, err)
		}
		if w.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
		}
		works = append(works, w)
	}
	return works, rows.Err()
}
