package postgres

import (
	"context"
	"database/sql"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

// AttributionRepository implements the resolver's persistence surface over
// Postgres. Find-or-create uses INSERT ... ON CONFLICT DO NOTHING plus a
// follow-up select, so unique constraints make creation idempotent even
// across processes.
type AttributionRepository struct {
	db  DB
	sql *sql.DB // nil inside a transaction or under a fake DB
}

func NewAttributionRepository(db *sql.DB) *AttributionRepository {
	return &AttributionRepository{db: NewSQLDB(db), sql: db}
}

func newAttributionRepository(db DB) *AttributionRepository {
	return &AttributionRepository{db: db}
}

var _ ports.AttributionStorePort = (*AttributionRepository)(nil)

// WithinTx commits fn as one unit. When no *sql.DB is available (already in
// a transaction, or running against a fake), fn runs against the current view.
func (r *AttributionRepository) WithinTx(ctx context.Context, fn func(tx ports.AttributionStorePort) error) error {
	if r.sql == nil {
		return fn(r)
	}
	tx, err := r.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(newAttributionRepository(NewTxDB(tx))); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

const findAppSQL = `
SELECT id, package_name, created_at
FROM apps
WHERE package_name = $1`

func (r *AttributionRepository) FindAppByPackage(ctx context.Context, packageName string) (*domain.App, error) {
	rows, err := r.db.QueryContext(ctx, findAppSQL, packageName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrNotFound
	}
	var app domain.App
	if err := rows.Scan(&app.ID, &app.PackageName, &app.CreatedAt); err != nil {
		return nil, err
	}
	return &app, rows.Err()
}

const insertVisitorSQL = `
INSERT INTO visitors (id, app_id, registered_at)
VALUES ($1, $2, $3)
ON CONFLICT (app_id, id) DO NOTHING`

const findVisitorSQL = `
SELECT v.id, v.app_id, v.registered_at, v.first_session_id, s.started_at
FROM visitors v
LEFT JOIN sessions s ON s.id = v.first_session_id
WHERE v.app_id = $1 AND v.id = $2`

func (r *AttributionRepository) FindOrCreateVisitor(ctx context.Context, appID, visitorID uuid.UUID, registeredAt time.Time) (*domain.Visitor, bool, error) {
	res, err := r.db.ExecContext(ctx, insertVisitorSQL, visitorID, appID, registeredAt)
	if err != nil {
		return nil, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	created := affected > 0

	rows, err := r.db.QueryContext(ctx, findVisitorSQL, appID, visitorID)
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
	var (
		v              domain.Visitor
		firstSessionID uuid.NullUUID
		firstStartedAt sql.NullTime
	)
	if err := rows.Scan(&v.ID, &v.AppID, &v.RegisteredAt, &firstSessionID, &firstStartedAt); err != nil {
		return nil, false, err
	}
	if firstSessionID.Valid {
		v.FirstSessionID = &firstSessionID.UUID
	}
	if firstStartedAt.Valid {
		t := firstStartedAt.Time
		v.FirstSessionStartedAt = &t
	}
	return &v, created, rows.Err()
}

const updateVisitorSQL = `
UPDATE visitors
SET registered_at = $3, first_session_id = $4, modified_at = now()
WHERE app_id = $1 AND id = $2`

func (r *AttributionRepository) UpdateVisitor(ctx context.Context, v *domain.Visitor) error {
	var firstSessionID uuid.NullUUID
	if v.FirstSessionID != nil {
		firstSessionID = uuid.NullUUID{UUID: *v.FirstSessionID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, updateVisitorSQL, v.AppID, v.ID, v.RegisteredAt, firstSessionID)
	return err
}

const findSessionsSQL = `
SELECT id, app_id, visitor_id, started_at, ended_at
FROM sessions
WHERE app_id = $1 AND visitor_id = $2 AND started_at <= $3 AND ended_at >= $4
ORDER BY started_at DESC`

func (r *AttributionRepository) FindSessions(ctx context.Context, appID, visitorID uuid.UUID, startedBefore, endedAfter time.Time) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, findSessionsSQL, appID, visitorID, startedBefore, endedAfter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.AppID, &s.VisitorID, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

const insertSessionSQL = `
INSERT INTO sessions (id, app_id, visitor_id, started_at, ended_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *AttributionRepository) CreateSession(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.ID, s.AppID, s.VisitorID, s.StartedAt, s.EndedAt)
	return err
}

const updateSessionSQL = `
UPDATE sessions
SET started_at = $2, ended_at = $3, modified_at = now()
WHERE id = $1`

func (r *AttributionRepository) UpdateSession(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, updateSessionSQL, s.ID, s.StartedAt, s.EndedAt)
	return err
}

const insertActivitySQL = `
INSERT INTO activities (
    id, app_id, visitor_id, session_id,
    category, activity_type, properties, occured_at,
    device_name, device_os,
    package_name, package_version, package_build,
    city, region, country
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8,
    $9, $10,
    $11, $12, $13,
    $14, $15, $16
)`

func (r *AttributionRepository) CreateActivity(ctx context.Context, a *domain.Activity) error {
	var properties any
	if a.Properties != "" {
		properties = a.Properties
	}
	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.ID, a.AppID, a.VisitorID, a.SessionID,
		string(a.Category), a.ActivityType, properties, a.OccuredAt,
		a.DeviceName, a.DeviceOS,
		a.PackageName, a.PackageVersion, a.PackageBuild,
		nullable(a.City), nullable(a.Region), nullable(a.Country),
	)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
