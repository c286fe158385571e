/*
Package sqlite stores employees, leaves and extra work in a single SQLite
file. It backs DB_DRIVER=sqlite for single-node deployments and local runs.

The schema is created on Open. SQLite has no exclusion constraints, so the
leave repository checks overlapping ranges inside the insert transaction
while holding the store's write lock.

Dates are stored as YYYY-MM-DD text and timestamps as RFC 3339 text, both UTC.
*/
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339Nano
)

type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and migrates) the database at path. Use ":memory:" for an
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		gender TEXT NOT NULL CHECK (gender IN ('male', 'female')),
		joining_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leaves (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		leave_type TEXT NOT NULL CHECK (leave_type IN ('ooo', 'maternity', 'paternity')),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		leave_count INTEGER NOT NULL,
		expected_delivery_date TEXT,
		child_dob TEXT,
		created_at TEXT NOT NULL,
		CHECK (start_date <= end_date)
	);

	CREATE INDEX IF NOT EXISTS idx_leaves_employee_start ON leaves (employee_id, start_date);

	CREATE TABLE IF NOT EXISTS extra_works (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		work_date TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (employee_id, work_date)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func formatNullableDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDate(*t), Valid: true}
}

func parseNullableDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
