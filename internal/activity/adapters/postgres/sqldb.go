package postgres

import (
	"context"
	"database/sql"
)

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	return s.db.QueryContext(ctx, query, args...)
}

type txDB struct {
	tx *sql.Tx
}

func NewTxDB(tx *sql.Tx) DB {
	return &txDB{tx: tx}
}

func (t *txDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *txDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	return t.tx.QueryContext(ctx, query, args...)
}
