package usecase

import (
	"context"
	"errors"
	"time"

	"mobile-analytics-service/internal/dashboard/core/domain"
	"mobile-analytics-service/internal/dashboard/core/ports"

	"github.com/google/uuid"
)

var ErrInvalidDays = errors.New("days must be between 1 and 365")

const defaultStatsDays = 30

type GetDashboardUseCase struct {
	reader ports.StatsReaderPort
}

func NewGetDashboardUseCase(reader ports.StatsReaderPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{reader: reader}
}

func (uc *GetDashboardUseCase) Activated(ctx context.Context, appID uuid.UUID) (bool, error) {
	return uc.reader.Activated(ctx, appID)
}

// DailyStats returns per-day counts for the trailing window. days == 0 means
// the default 30-day window.
func (uc *GetDashboardUseCase) DailyStats(ctx context.Context, appID uuid.UUID, days int) ([]domain.DailyStat, error) {
	if days == 0 {
		days = defaultStatsDays
	}
	if days < 1 || days > 365 {
		return nil, ErrInvalidDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return uc.reader.DailyStats(ctx, appID, since)
}

func (uc *GetDashboardUseCase) CrashGroups(ctx context.Context, appID uuid.UUID) ([]domain.CrashGroup, error) {
	return uc.reader.CrashGroups(ctx, appID)
}

func (uc *GetDashboardUseCase) GoalGroups(ctx context.Context, appID uuid.UUID) ([]domain.GoalGroup, error) {
	return uc.reader.GoalGroups(ctx, appID)
}
