package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type extraWorkRepositoryImpl struct {
	db *database.DB
}

func NewExtraWorkRepository(db *database.DB) extrawork.ExtraWorkRepository {
	return &extraWorkRepositoryImpl{db: db}
}

// Create implements extrawork.ExtraWorkRepository.
func (r *extraWorkRepositoryImpl) Create(ctx context.Context, w extrawork.ExtraWork) (extrawork.ExtraWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_works (id, employee_id, work_date, started_at, ended_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, work_date, started_at, ended_at, created_at
	`

	created, err := scanExtraWork(q.QueryRow(ctx, query,
		w.ID, w.EmployeeID, w.Date, w.StartedAt, w.EndedAt, w.CreatedAt,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolationCode:
			return extrawork.ExtraWork{}, extrawork.ErrAlreadyLogged
		case foreignKeyViolationCode:
			return extrawork.ExtraWork{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, w.EmployeeID)
		}
		return extrawork.ExtraWork{}, err
	}
	return created, nil
}

// ListByEmployee implements extrawork.ExtraWorkRepository.
func (r *extraWorkRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]extrawork.ExtraWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, started_at, ended_at, created_at
		FROM extra_works
		WHERE employee_id = $1
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	works := []extrawork.ExtraWork{}
	for rows.Next() {
		w, err := scanExtraWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return works, nil
}

func scanExtraWork(row pgx.Row) (extrawork.ExtraWork, error) {
	var (
		w    extrawork.ExtraWork
		date time.Time
	)
	if err := row.Scan(&w.ID, &w.EmployeeID, &date, &w.StartedAt, &w.EndedAt, &w.CreatedAt); err != nil {
		return extrawork.ExtraWork{}, err
	}
	w.Date = calendarDate(date)
	w.StartedAt = w.StartedAt.UTC()
	w.EndedAt = w.EndedAt.UTC()
	return w, nil
}
