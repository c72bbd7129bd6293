package ports

import (
	"context"
	"errors"
	"time"

	"mobile-analytics-service/internal/activity/core/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// AttributionStorePort is the persistence surface the resolver needs.
//
// Find-or-create operations report:
//
//	created = true,  err = nil -> new row
//	created = false, err = nil -> existing row returned (idempotent)
//	err != nil                 -> storage error
type AttributionStorePort interface {
	// WithinTx runs fn against a transactional view of the store and
	// commits iff fn returns nil. Nested calls reuse the open transaction.
	WithinTx(ctx context.Context, fn func(tx AttributionStorePort) error) error

	FindAppByPackage(ctx context.Context, packageName string) (*domain.App, error)

	FindOrCreateVisitor(ctx context.Context, appID, visitorID uuid.UUID, registeredAt time.Time) (*domain.Visitor, bool, error)
	UpdateVisitor(ctx context.Context, v *domain.Visitor) error

	// FindSessions returns sessions for the visitor with
	// started_at <= startedBefore and ended_at >= endedAfter, ordered by
	// started_at descending.
	FindSessions(ctx context.Context, appID, visitorID uuid.UUID, startedBefore, endedAfter time.Time) ([]*domain.Session, error)
	CreateSession(ctx context.Context, s *domain.Session) error
	UpdateSession(ctx context.Context, s *domain.Session) error

	CreateActivity(ctx context.Context, a *domain.Activity) error
}
