package ports

import (
	"context"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"

	"github.com/google/uuid"
)

// CrashStorePort persists crash groups and their association sets. Linking
// the same pair twice is a no-op, not an error.
type CrashStorePort interface {
	FindOrCreateCrash(ctx context.Context, appID uuid.UUID, signature string, seenAt time.Time) (*domain.Crash, bool, error)
	UpdateCrash(ctx context.Context, c *domain.Crash) error
	LinkCrashSession(ctx context.Context, crashID, sessionID uuid.UUID) error
	LinkCrashActivity(ctx context.Context, crashID, activityID uuid.UUID) error
}

// GoalStorePort persists goal groups; same contract as CrashStorePort.
type GoalStorePort interface {
	FindOrCreateGoal(ctx context.Context, appID uuid.UUID, name string, seenAt time.Time) (*domain.Goal, bool, error)
	UpdateGoal(ctx context.Context, g *domain.Goal) error
	LinkGoalSession(ctx context.Context, goalID, sessionID uuid.UUID) error
	LinkGoalActivity(ctx context.Context, goalID, activityID uuid.UUID) error
}
