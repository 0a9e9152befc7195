// Package sqlite implements the store on a SQLite database. It exists so the
// portal can keep state across restarts when that is wanted; the memory
// driver remains the default.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/yklabs/portal/internal/portal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens (and creates if needed) the database at dsn, e.g.
// "file:portal.db?_busy_timeout=5000&_journal_mode=WAL".
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Users() store.Users     { return &usersRepo{db: s.db} }
func (s *Store) Courses() store.Courses { return &coursesRepo{db: s.db} }
func (s *Store) Tickets() store.Tickets { return &ticketsRepo{db: s.db} }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// isUniqueViolation detects a UNIQUE constraint failure from modernc sqlite,
// which surfaces it in the error text rather than a typed sentinel.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
