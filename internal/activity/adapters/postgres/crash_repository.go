package postgres

import (
	"context"
	"database/sql"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

type CrashRepository struct {
	db DB
}

func NewCrashRepository(db *sql.DB) *CrashRepository {
	return &CrashRepository{db: NewSQLDB(db)}
}

var _ ports.CrashStorePort = (*CrashRepository)(nil)

const insertCrashSQL = `
INSERT INTO crashes (id, app_id, signature, first_at, last_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (app_id, signature) DO NOTHING`

const findCrashSQL = `
SELECT id, app_id, signature, first_at, last_at
FROM crashes
WHERE app_id = $1 AND signature = $2`

func (r *CrashRepository) FindOrCreateCrash(ctx context.Context, appID uuid.UUID, signature string, seenAt time.Time) (*domain.Crash, bool, error) {
	res, err := r.db.ExecContext(ctx, insertCrashSQL, uuid.New(), appID, signature, seenAt)
	if err != nil {
		return nil, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	rows, err := r.db.QueryContext(ctx, findCrashSQL, appID, signature)
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
	var c domain.Crash
	if err := rows.Scan(&c.ID, &c.AppID, &c.Signature, &c.FirstAt, &c.LastAt); err != nil {
		return nil, false, err
	}
	return &c, affected > 0, rows.Err()
}

const updateCrashSQL = `
UPDATE crashes
SET first_at = $2, last_at = $3, modified_at = now()
WHERE id = $1`

func (r *CrashRepository) UpdateCrash(ctx context.Context, c *domain.Crash) error {
	_, err := r.db.ExecContext(ctx, updateCrashSQL, c.ID, c.FirstAt, c.LastAt)
	return err
}

const linkCrashSessionSQL = `
INSERT INTO crash_sessions (crash_id, session_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *CrashRepository) LinkCrashSession(ctx context.Context, crashID, sessionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, linkCrashSessionSQL, crashID, sessionID)
	return err
}

const linkCrashActivitySQL = `
INSERT INTO crash_activities (crash_id, activity_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *CrashRepository) LinkCrashActivity(ctx context.Context, crashID, activityID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, linkCrashActivitySQL, crashID, activityID)
	return err
}
