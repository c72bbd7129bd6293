package usecase

import (
	"context"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

// CrashAggregator groups CRASH activities by stack signature. It runs after
// the activity is recorded; a failure here never discards the activity.
type CrashAggregator struct {
	crashes ports.CrashStorePort
	locks   keyedLocks
}

func NewCrashAggregator(crashes ports.CrashStorePort) *CrashAggregator {
	return &CrashAggregator{crashes: crashes}
}

func (ca *CrashAggregator) Aggregate(ctx context.Context, appID, sessionID uuid.UUID, activity *domain.Activity, props map[string]any) error {
	if props == nil {
		return domain.ErrNoCrashSignature
	}
	sig, err := domain.CrashSignatureFromProperties(props)
	if err != nil {
		return err
	}
	signature := sig.Hash()

	unlock := ca.locks.Lock(appID.String() + "|" + signature)
	defer unlock()

	crash, _, err := ca.crashes.FindOrCreateCrash(ctx, appID, signature, activity.OccuredAt)
	if err != nil {
		return err
	}

	// Strict comparisons: an equal timestamp does not trigger a write.
	changed := false
	if activity.OccuredAt.Before(crash.FirstAt) {
		crash.FirstAt = activity.OccuredAt
		changed = true
	}
	if activity.OccuredAt.After(crash.LastAt) {
		crash.LastAt = activity.OccuredAt
		changed = true
	}
	if changed {
		if err := ca.crashes.UpdateCrash(ctx, crash); err != nil {
			return err
		}
	}

	if err := ca.crashes.LinkCrashSession(ctx, crash.ID, sessionID); err != nil {
		return err
	}
	return ca.crashes.LinkCrashActivity(ctx, crash.ID, activity.ID)
}
