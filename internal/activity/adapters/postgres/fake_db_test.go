package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// fakeDB records executed statements and serves canned result sets, keyed by
// a substring of the query.
type fakeDB struct {
	execs   []executed
	results map[string]fakeResult // substring -> exec result
	rows    map[string][][]any    // substring -> result set
}

type executed struct {
	query string
	args  []any
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		results: map[string]fakeResult{},
		rows:    map[string][][]any{},
	}
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execs = append(f.execs, executed{query: query, args: args})
	for sub, res := range f.results {
		if strings.Contains(query, sub) {
			return res, nil
		}
	}
	return fakeResult{affected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	for sub, rows := range f.rows {
		if strings.Contains(query, sub) {
			return &fakeRows{rows: rows}, nil
		}
	}
	return &fakeRows{}, nil
}

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: want %d columns, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		if err := assign(d, row[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

func assign(dest, value any) error {
	switch d := dest.(type) {
	case *uuid.UUID:
		*d = value.(uuid.UUID)
	case *uuid.NullUUID:
		if value == nil {
			*d = uuid.NullUUID{}
		} else {
			*d = uuid.NullUUID{UUID: value.(uuid.UUID), Valid: true}
		}
	case *time.Time:
		*d = value.(time.Time)
	case *sql.NullTime:
		if value == nil {
			*d = sql.NullTime{}
		} else {
			*d = sql.NullTime{Time: value.(time.Time), Valid: true}
		}
	case *string:
		*d = value.(string)
	case *int64:
		*d = value.(int64)
	case *bool:
		*d = value.(bool)
	default:
		return fmt.Errorf("scan: unsupported destination %T", dest)
	}
	return nil
}
