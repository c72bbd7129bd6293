package usecase

import (
	"context"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

// GoalAggregator groups GOAL activities by goal name. Same shape as the
// crash aggregator, without the hashing step.
type GoalAggregator struct {
	goals ports.GoalStorePort
	locks keyedLocks
}

func NewGoalAggregator(goals ports.GoalStorePort) *GoalAggregator {
	return &GoalAggregator{goals: goals}
}

func (ga *GoalAggregator) Aggregate(ctx context.Context, appID, sessionID uuid.UUID, activity *domain.Activity, props map[string]any) error {
	if props == nil {
		return domain.ErrNoGoalName
	}
	name, err := domain.GoalNameFromProperties(props)
	if err != nil {
		return err
	}

	unlock := ga.locks.Lock(appID.String() + "|" + name)
	defer unlock()

	goal, _, err := ga.goals.FindOrCreateGoal(ctx, appID, name, activity.OccuredAt)
	if err != nil {
		return err
	}

	changed := false
	if activity.OccuredAt.Before(goal.FirstAt) {
		goal.FirstAt = activity.OccuredAt
		changed = true
	}
	if activity.OccuredAt.After(goal.LastAt) {
		goal.LastAt = activity.OccuredAt
		changed = true
	}
	if changed {
		if err := ga.goals.UpdateGoal(ctx, goal); err != nil {
			return err
		}
	}

	if err := ga.goals.LinkGoalSession(ctx, goal.ID, sessionID); err != nil {
		return err
	}
	return ga.goals.LinkGoalActivity(ctx, goal.ID, activity.ID)
}
