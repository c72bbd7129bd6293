package postgres

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"mobile-analytics-service/internal/dashboard/core/domain"
	"mobile-analytics-service/internal/dashboard/core/ports"

	"github.com/google/uuid"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	return s.db.QueryContext(ctx, query, args...)
}

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

const activatedSQL = `
SELECT EXISTS (SELECT 1 FROM sessions WHERE app_id = $1)`

func (r *StatsRepository) Activated(ctx context.Context, appID uuid.UUID) (bool, error) {
	rows, err := r.db.QueryContext(ctx, activatedSQL, appID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var activated bool
	if rows.Next() {
		if err := rows.Scan(&activated); err != nil {
			return false, err
		}
	}
	return activated, rows.Err()
}

const sessionsByDaySQL = `
SELECT date_trunc('day', started_at) AS day, COUNT(*)
FROM sessions
WHERE app_id = $1 AND started_at >= $2
GROUP BY day`

const visitorsByDaySQL = `
SELECT date_trunc('day', registered_at) AS day, COUNT(*)
FROM visitors
WHERE app_id = $1 AND registered_at >= $2
GROUP BY day`

// DailyStats merges the session and visitor day buckets; days with no rows
// on either side are absent from the result.
func (r *StatsRepository) DailyStats(ctx context.Context, appID uuid.UUID, since time.Time) ([]domain.DailyStat, error) {
	byDay := map[time.Time]*domain.DailyStat{}

	if err := r.countByDay(ctx, sessionsByDaySQL, appID, since, func(day time.Time, count int64) {
		stat(byDay, day).Sessions = count
	}); err != nil {
		return nil, err
	}
	if err := r.countByDay(ctx, visitorsByDaySQL, appID, since, func(day time.Time, count int64) {
		stat(byDay, day).Visitors = count
	}); err != nil {
		return nil, err
	}

	stats := make([]domain.DailyStat, 0, len(byDay))
	for _, s := range byDay {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Day.Before(stats[j].Day) })
	return stats, nil
}

func stat(byDay map[time.Time]*domain.DailyStat, day time.Time) *domain.DailyStat {
	if s, ok := byDay[day]; ok {
		return s
	}
	s := &domain.DailyStat{Day: day}
	byDay[day] = s
	return s
}

func (r *StatsRepository) countByDay(ctx context.Context, query string, appID uuid.UUID, since time.Time, apply func(day time.Time, count int64)) error {
	rows, err := r.db.QueryContext(ctx, query, appID, since)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day   time.Time
			count int64
		)
		if err := rows.Scan(&day, &count); err != nil {
			return err
		}
		apply(day.UTC(), count)
	}
	return rows.Err()
}

const crashGroupsSQL = `
SELECT c.id, c.signature, c.first_at, c.last_at,
    (SELECT COUNT(*) FROM crash_sessions cs WHERE cs.crash_id = c.id) AS session_count,
    (SELECT COUNT(*) FROM crash_activities ca WHERE ca.crash_id = c.id) AS activity_count
FROM crashes c
WHERE c.app_id = $1
ORDER BY c.last_at DESC`

func (r *StatsRepository) CrashGroups(ctx context.Context, appID uuid.UUID) ([]domain.CrashGroup, error) {
	rows, err := r.db.QueryContext(ctx, crashGroupsSQL, appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.CrashGroup
	for rows.Next() {
		var g domain.CrashGroup
		if err := rows.Scan(&g.ID, &g.Signature, &g.FirstAt, &g.LastAt, &g.SessionCount, &g.ActivityCount); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

const goalGroupsSQL = `
SELECT g.id, g.name, g.first_at, g.last_at,
    (SELECT COUNT(*) FROM goal_sessions gs WHERE gs.goal_id = g.id) AS session_count,
    (SELECT COUNT(*) FROM goal_activities ga WHERE ga.goal_id = g.id) AS activity_count
FROM goals g
WHERE g.app_id = $1
ORDER BY g.last_at DESC`

func (r *StatsRepository) GoalGroups(ctx context.Context, appID uuid.UUID) ([]domain.GoalGroup, error) {
	rows, err := r.db.QueryContext(ctx, goalGroupsSQL, appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.GoalGroup
	for rows.Next() {
		var g domain.GoalGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.FirstAt, &g.LastAt, &g.SessionCount, &g.ActivityCount); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
