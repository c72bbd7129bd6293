package postgres

import (
	"context"
	"database/sql"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

type GoalRepository struct {
	db DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: NewSQLDB(db)}
}

var _ ports.GoalStorePort = (*GoalRepository)(nil)

const insertGoalSQL = `
INSERT INTO goals (id, app_id, name, first_at, last_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (app_id, name) DO NOTHING`

const findGoalSQL = `
SELECT id, app_id, name, first_at, last_at
FROM goals
WHERE app_id = $1 AND name = $2`

func (r *GoalRepository) FindOrCreateGoal(ctx context.Context, appID uuid.UUID, name string, seenAt time.Time) (*domain.Goal, bool, error) {
	res, err := r.db.ExecContext(ctx, insertGoalSQL, uuid.New(), appID, name, seenAt)
	if err != nil {
		return nil, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	rows, err := r.db.QueryContext(ctx, findGoalSQL, appID, name)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, err
		}
		return nil, false, ports.ErrNotFound
	}
	var g domain.Goal
	if err := rows.Scan(&g.ID, &g.AppID, &g.Name, &g.FirstAt, &g.LastAt); err != nil {
		return nil, false, err
	}
	return &g, affected > 0, rows.Err()
}

const updateGoalSQL = `
UPDATE goals
SET first_at = $2, last_at = $3, modified_at = now()
WHERE id = $1`

func (r *GoalRepository) UpdateGoal(ctx context.Context, g *domain.Goal) error {
	_, err := r.db.ExecContext(ctx, updateGoalSQL, g.ID, g.FirstAt, g.LastAt)
	return err
}

const linkGoalSessionSQL = `
INSERT INTO goal_sessions (goal_id, session_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *GoalRepository) LinkGoalSession(ctx context.Context, goalID, sessionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, linkGoalSessionSQL, goalID, sessionID)
	return err
}

const linkGoalActivitySQL = `
INSERT INTO goal_activities (goal_id, activity_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *GoalRepository) LinkGoalActivity(ctx context.Context, goalID, activityID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, linkGoalActivitySQL, goalID, activityID)
	return err
}
