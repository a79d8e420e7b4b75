// Package postgresql implements the storage backend on PostgreSQL through
// database/sql and the pgx driver. The schema is owned by the SQL migrations
// in the repository's migrations directory.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Registers the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mavecode/mavecode-api/internal/storage"
)

const uniqueViolation = "23505"

// Storage is the PostgreSQL backend.
type Storage struct {
	DB *sql.DB
}

// New opens a connection pool and checks it with a ping.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the pool.
func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

// wrap maps driver errors onto the storage sentinels.
func wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s: %w: %s", op, storage.ErrConflict, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// affected turns a zero-row write into ErrNotFound.
func affected(op string, res sql.Result, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

func limitOf(limit int) int {
	if limit <= 0 || limit > storage.MaxListSize {
		return storage.MaxListSize
	}
	return limit
}
