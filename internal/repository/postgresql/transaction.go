package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

// WithTransaction executes fn inside a database transaction. The transaction
// travels in the ctx handed to fn, so repositories called with that ctx join
// it through GetQuerier. An outer transaction already in ctx is reused.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

// EmployeeLocker serializes work per employee with a transaction scoped
// advisory lock. The lock is released when the transaction ends.
type EmployeeLocker struct {
	db *database.DB
}

func NewEmployeeLocker(db *database.DB) *EmployeeLocker {
	return &EmployeeLocker{db: db}
}

// WithEmployeeLock implements employee.Locker.
func (l *EmployeeLocker) WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, l.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, l.db)
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, employeeID); err != nil {
			return fmt.Errorf("acquire employee lock: %w", err)
		}
		return fn(ctx)
	})
}
