package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeDB struct {
	rows map[string][][]any // substring -> result set
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	for sub, rows := range f.rows {
		if strings.Contains(query, sub) {
			return &fakeRows{rows: rows}, nil
		}
	}
	return &fakeRows{}, nil
}

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
	for i, d := range dest {
		switch v := d.(type) {
		case *uuid.UUID:
			*v = row[i].(uuid.UUID)
		case *time.Time:
			*v = row[i].(time.Time)
		case *string:
			*v = row[i].(string)
		case *int64:
			*v = row[i].(int64)
		case *bool:
			*v = row[i].(bool)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestActivated(t *testing.T) {
	repo := NewStatsRepository(&fakeDB{rows: map[string][][]any{
		"FROM sessions": {{true}},
	}})

	activated, err := repo.Activated(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !activated {
		t.Fatal("expected activated=true")
	}
}

func TestDailyStats_MergesSessionAndVisitorBuckets(t *testing.T) {
	repo := NewStatsRepository(&fakeDB{rows: map[string][][]any{
		"FROM sessions": {
			{day("2026-08-02"), int64(5)},
			{day("2026-08-01"), int64(3)},
		},
		"FROM visitors": {
			{day("2026-08-01"), int64(2)},
			{day("2026-08-03"), int64(1)},
		},
	}})

	stats, err := repo.DailyStats(context.Background(), uuid.New(), day("2026-07-04"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 days, got %d", len(stats))
	}

	// Sorted ascending by day, with counts merged per day.
	if !stats[0].Day.Equal(day("2026-08-01")) || stats[0].Sessions != 3 || stats[0].Visitors != 2 {
		t.Fatalf("unexpected first day: %+v", stats[0])
	}
	if !stats[1].Day.Equal(day("2026-08-02")) || stats[1].Sessions != 5 || stats[1].Visitors != 0 {
		t.Fatalf("unexpected second day: %+v", stats[1])
	}
	if !stats[2].Day.Equal(day("2026-08-03")) || stats[2].Sessions != 0 || stats[2].Visitors != 1 {
		t.Fatalf("unexpected third day: %+v", stats[2])
	}
}

func TestCrashGroups(t *testing.T) {
	crashID := uuid.New()
	firstAt := time.Now().UTC().Add(-time.Hour)
	lastAt := time.Now().UTC()

	repo := NewStatsRepository(&fakeDB{rows: map[string][][]any{
		"FROM crashes": {
			{crashID, "deadbeef", firstAt, lastAt, int64(4), int64(7)},
		},
	}})

	groups, err := repo.CrashGroups(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.ID != crashID || g.Signature != "deadbeef" || g.SessionCount != 4 || g.ActivityCount != 7 {
		t.Fatalf("unexpected group: %+v", g)
	}
}

func TestGoalGroups(t *testing.T) {
	goalID := uuid.New()
	at := time.Now().UTC()

	repo := NewStatsRepository(&fakeDB{rows: map[string][][]any{
		"FROM goals": {
			{goalID, "signup", at, at, int64(2), int64(2)},
		},
	}})

	groups, err := repo.GoalGroups(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "signup" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}
