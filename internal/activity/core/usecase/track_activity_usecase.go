package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRecord covers every validation failure; the wrapped message
	// names the offending field.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrAppNotFound means the payload was well-formed but its package name
	// is not registered.
	ErrAppNotFound = errors.New("app not found")
	// ErrIgnored means the caller-supplied predicate vetoed the record
	// after identity was resolved.
	ErrIgnored = errors.New("record ignored")
)

// IgnorePredicate may veto attribution after identity is resolved but before
// the activity is recorded. Resolution side effects (visitor rewind, session
// widening) are already committed when it runs and are kept on veto.
type IgnorePredicate func(app *domain.App, visitor *domain.Visitor, session *domain.Session) bool

// Settings are the attribution tunables. The search window finds session
// candidates; the gap decides whether to reuse one. They are independent
// controls: a candidate inside the window can still be rejected by the gap.
type Settings struct {
	SessionGap   time.Duration
	SearchWindow time.Duration
	LogCity      bool
}

type TrackActivityUseCase struct {
	store   ports.AttributionStorePort
	crashes *CrashAggregator
	goals   *GoalAggregator

	settings Settings
	ignore   IgnorePredicate

	visitorLocks keyedLocks
}

func NewTrackActivityUseCase(
	store ports.AttributionStorePort,
	crashes *CrashAggregator,
	goals *GoalAggregator,
	settings Settings,
	ignore IgnorePredicate,
) *TrackActivityUseCase {
	return &TrackActivityUseCase{
		store:    store,
		crashes:  crashes,
		goals:    goals,
		settings: settings,
		ignore:   ignore,
	}
}

type TrackInput struct {
	Category domain.Category
	Record   map[string]any
	Geo      *domain.GeoInfo
}

type TrackResult struct {
	App      *domain.App
	Visitor  *domain.Visitor
	Session  *domain.Session
	Activity *domain.Activity

	// AggregationErr carries a crash/goal aggregation failure. The
	// activity is recorded regardless; callers log and move on.
	AggregationErr error
}

// Execute attributes one record. Terminal outcomes map to the sentinel
// errors above; nil error means the activity was recorded.
func (uc *TrackActivityUseCase) Execute(ctx context.Context, in TrackInput) (*TrackResult, error) {
	rec, err := ParseRecord(in.Category, in.Record)
	if err != nil {
		return nil, err
	}

	app, err := uc.store.FindAppByPackage(ctx, rec.PackageName)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrAppNotFound
		}
		return nil, err
	}

	visitor, session, err := uc.resolve(ctx, app, rec)
	if err != nil {
		return nil, err
	}

	if uc.ignore != nil && uc.ignore(app, visitor, session) {
		return nil, ErrIgnored
	}

	activity, err := uc.record(ctx, app, visitor, session, rec, in.Geo)
	if err != nil {
		return nil, err
	}

	res := &TrackResult{App: app, Visitor: visitor, Session: session, Activity: activity}
	switch {
	case rec.IsCrash():
		res.AggregationErr = uc.crashes.Aggregate(ctx, app.ID, session.ID, activity, rec.Properties)
	case rec.IsGoal():
		res.AggregationErr = uc.goals.Aggregate(ctx, app.ID, session.ID, activity, rec.Properties)
	}
	return res, nil
}

// TrackBatch attributes records sequentially and stops at the first one that
// fails; earlier records are not rolled back. Returns the results of the
// records that succeeded.
func (uc *TrackActivityUseCase) TrackBatch(ctx context.Context, category domain.Category, records []map[string]any, geo *domain.GeoInfo) ([]*TrackResult, error) {
	results := make([]*TrackResult, 0, len(records))
	for _, raw := range records {
		res, err := uc.Execute(ctx, TrackInput{Category: category, Record: raw, Geo: geo})
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// resolve finds or creates the visitor and session for a record. The whole
// multi-entity mutation (visitor rewind, session widening, first-session
// bookkeeping) commits as one transaction, serialized per (app, visitor) so
// concurrent records cannot both create a session for the same gap window.
func (uc *TrackActivityUseCase) resolve(ctx context.Context, app *domain.App, rec *domain.Record) (*domain.Visitor, *domain.Session, error) {
	unlock := uc.visitorLocks.Lock(app.ID.String() + "|" + rec.VisitorID.String())
	defer unlock()

	var (
		visitor *domain.Visitor
		session *domain.Session
	)
	err := uc.store.WithinTx(ctx, func(tx ports.AttributionStorePort) error {
		v, _, err := tx.FindOrCreateVisitor(ctx, app.ID, rec.VisitorID, rec.EventTime)
		if err != nil {
			return err
		}
		// An out-of-order early record rewinds registration; it never
		// moves forward.
		if v.RegisteredAt.After(rec.EventTime) {
			v.RegisteredAt = rec.EventTime
			if err := tx.UpdateVisitor(ctx, v); err != nil {
				return err
			}
		}

		s, err := uc.findOrStartSession(ctx, tx, app, v, rec.EventTime)
		if err != nil {
			return err
		}

		if rec.EventTime.Before(s.StartedAt) {
			s.StartedAt = rec.EventTime
		}
		if rec.EventTime.After(s.EndedAt) {
			s.EndedAt = rec.EventTime
		}
		if err := tx.UpdateSession(ctx, s); err != nil {
			return err
		}

		if v.FirstSessionID == nil || v.FirstSessionStartedAt == nil || v.FirstSessionStartedAt.After(s.StartedAt) {
			v.FirstSessionID = &s.ID
			v.FirstSessionStartedAt = &s.StartedAt
			if err := tx.UpdateVisitor(ctx, v); err != nil {
				return err
			}
		}

		visitor, session = v, s
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return visitor, session, nil
}

// findOrStartSession searches a window around the event time for a candidate
// session, then applies the gap threshold to decide reuse. The record may be
// out of order, so the search looks around the activity time rather than
// only at the latest session.
func (uc *TrackActivityUseCase) findOrStartSession(ctx context.Context, tx ports.AttributionStorePort, app *domain.App, v *domain.Visitor, eventTime time.Time) (*domain.Session, error) {
	sessions, err := tx.FindSessions(ctx, app.ID, v.ID,
		eventTime.Add(uc.settings.SearchWindow),
		eventTime.Add(-uc.settings.SearchWindow))
	if err != nil {
		return nil, err
	}

	// Most recently started match wins; ties prefer the latest session.
	var candidate *domain.Session
	if len(sessions) > 0 {
		candidate = sessions[0]
	}

	if candidate != nil && eventTime.Sub(candidate.EndedAt) <= uc.settings.SessionGap {
		return candidate, nil
	}

	// No candidate, or the candidate matched the window but the idle gap
	// was exceeded: this activity starts a fresh session.
	s := &domain.Session{
		ID:        uuid.New(),
		AppID:     app.ID,
		VisitorID: v.ID,
		StartedAt: eventTime,
		EndedAt:   eventTime,
	}
	if err := tx.CreateSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *TrackActivityUseCase) record(ctx context.Context, app *domain.App, visitor *domain.Visitor, session *domain.Session, rec *domain.Record, geo *domain.GeoInfo) (*domain.Activity, error) {
	properties := ""
	if rec.Properties != nil {
		blob, err := json.Marshal(rec.Properties)
		if err != nil {
			return nil, err
		}
		properties = string(blob)
	}

	a := &domain.Activity{
		ID:             uuid.New(),
		AppID:          app.ID,
		VisitorID:      visitor.ID,
		SessionID:      session.ID,
		Category:       rec.Category,
		ActivityType:   rec.ActivityType,
		Properties:     properties,
		OccuredAt:      rec.EventTime,
		DeviceName:     rec.DeviceName,
		DeviceOS:       rec.DeviceOS,
		PackageName:    rec.PackageName,
		PackageVersion: rec.PackageVersion,
		PackageBuild:   rec.PackageBuild,
	}
	if geo != nil {
		if uc.settings.LogCity {
			a.City = geo.City
		}
		a.Region = geo.Region
		a.Country = geo.Country
	}

	if err := uc.store.CreateActivity(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
