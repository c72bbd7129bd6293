package postgres

import (
	"context"
	"database/sql"
)

// RowScanner is the subset of *sql.Rows the repositories need, kept as an
// interface so tests can fake result sets.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}
