// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// SQLiteStore persists employees in a single-table SQLite database using the
// pure-Go modernc driver, so no cgo toolchain is needed.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS employees (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	position   TEXT NOT NULL,
	salary     REAL NOT NULL,
	hired_at   TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// NewSQLiteStore opens (or creates) the database at path and ensures the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store: path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open %s: %w", path, err)
	}
	// The driver serialises writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Put inserts or overwrites the record for employee.ID.
func (s *SQLiteStore) Put(ctx context.Context, employee staff.Employee) error {
	const q = `
INSERT INTO employees (id, name, email, position, salary, hired_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	email = excluded.email,
	position = excluded.position,
	salary = excluded.salary,
	hired_at = excluded.hired_at,
	created_at = excluded.created_at
`
	_, err := s.db.ExecContext(ctx, q,
		employee.ID, employee.Name, employee.Email, employee.Position,
		employee.Salary,
		employee.HiredAt.UTC().Format(time.RFC3339Nano),
		employee.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite store: put %s: %w", employee.ID, err)
	}
	return nil
}

func scanEmployee(scan func(...any) error) (staff.Employee, error) {
	var (
		e       staff.Employee
		hiredAt string
		created string
	)
	if err := scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Salary, &hiredAt, &created); err != nil {
		return staff.Employee{}, err
	}
	var err error
	if e.HiredAt, err = time.Parse(time.RFC3339Nano, hiredAt); err != nil {
		return staff.Employee{}, fmt.Errorf("parse hired_at: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return staff.Employee{}, fmt.Errorf("parse created_at: %w", err)
	}
	return e, nil
}

// Get returns the record for id, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	const q = `SELECT id, name, email, position, salary, hired_at, created_at FROM employees WHERE id = ?`
	row := s.db.QueryRowContext(ctx, q, id)
	e, err := scanEmployee(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return staff.Employee{}, ErrNotFound
	}
	if err != nil {
		return staff.Employee{}, fmt.Errorf("sqlite store: get %s: %w", id, err)
	}
	return e, nil
}

// List returns all records sorted by ID.
func (s *SQLiteStore) List(ctx context.Context) ([]staff.Employee, error) {
	const q = `SELECT id, name, email, position, salary, hired_at, created_at FROM employees ORDER BY id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []staff.Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("sqlite store: list: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite store: list: %w", err)
	}
	return out, nil
}

// Delete removes the record for id, or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite store: delete %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
