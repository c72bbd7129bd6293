package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFindOrCreateCrash(t *testing.T) {
	appID, crashID := uuid.New(), uuid.New()
	seenAt := time.Now().UTC()

	db := newFakeDB()
	db.results["INSERT INTO crashes"] = fakeResult{affected: 1}
	db.rows["FROM crashes"] = [][]any{
		{crashID, appID, "deadbeef", seenAt, seenAt},
	}
	repo := &CrashRepository{db: db}

	crash, created, err := repo.FindOrCreateCrash(context.Background(), appID, "deadbeef", seenAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if crash.ID != crashID || crash.Signature != "deadbeef" {
		t.Fatalf("unexpected crash: %+v", crash)
	}
	if !strings.Contains(db.execs[0].query, "ON CONFLICT (app_id, signature) DO NOTHING") {
		t.Fatalf("insert must be idempotent per (app_id, signature):\n%s", db.execs[0].query)
	}
}

func TestFindOrCreateCrash_Existing(t *testing.T) {
	appID, crashID := uuid.New(), uuid.New()
	firstAt := time.Now().UTC().Add(-time.Hour)
	lastAt := time.Now().UTC()

	db := newFakeDB()
	db.results["INSERT INTO crashes"] = fakeResult{affected: 0}
	db.rows["FROM crashes"] = [][]any{
		{crashID, appID, "deadbeef", firstAt, lastAt},
	}
	repo := &CrashRepository{db: db}

	crash, created, err := repo.FindOrCreateCrash(context.Background(), appID, "deadbeef", lastAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false")
	}
	if !crash.FirstAt.Equal(firstAt) || !crash.LastAt.Equal(lastAt) {
		t.Fatalf("existing bounds not loaded: %+v", crash)
	}
}

func TestCrashLinks_Idempotent(t *testing.T) {
	db := newFakeDB()
	repo := &CrashRepository{db: db}

	if err := repo.LinkCrashSession(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.LinkCrashActivity(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range db.execs {
		if !strings.Contains(e.query, "ON CONFLICT DO NOTHING") {
			t.Fatalf("link insert must be idempotent:\n%s", e.query)
		}
	}
}

func TestGoalRepository_SameShape(t *testing.T) {
	appID, goalID := uuid.New(), uuid.New()
	seenAt := time.Now().UTC()

	db := newFakeDB()
	db.results["INSERT INTO goals"] = fakeResult{affected: 1}
	db.rows["FROM goals"] = [][]any{
		{goalID, appID, "signup", seenAt, seenAt},
	}
	repo := &GoalRepository{db: db}

	goal, created, err := repo.FindOrCreateGoal(context.Background(), appID, "signup", seenAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created || goal.Name != "signup" {
		t.Fatalf("unexpected goal: created=%v %+v", created, goal)
	}
	if !strings.Contains(db.execs[0].query, "ON CONFLICT (app_id, name) DO NOTHING") {
		t.Fatalf("insert must be idempotent per (app_id, name):\n%s", db.execs[0].query)
	}
}
