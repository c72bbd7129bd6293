package ports

import (
	"context"
	"time"

	"mobile-analytics-service/internal/dashboard/core/domain"

	"github.com/google/uuid"
)

type StatsReaderPort interface {
	// Activated reports whether the app has recorded at least one session.
	Activated(ctx context.Context, appID uuid.UUID) (bool, error)
	// DailyStats returns per-day session starts and visitor registrations
	// since the given time, ordered by day ascending.
	DailyStats(ctx context.Context, appID uuid.UUID, since time.Time) ([]domain.DailyStat, error)
	CrashGroups(ctx context.Context, appID uuid.UUID) ([]domain.CrashGroup, error)
	GoalGroups(ctx context.Context, appID uuid.UUID) ([]domain.GoalGroup, error)
}
