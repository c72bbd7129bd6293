package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category discriminates the two activity surfaces.
type Category string

const (
	CategoryEvent  Category = "E"
	CategoryAction Category = "A"
)

// Event types accepted on the event surface. Actions accept any non-empty type.
const (
	EventView     = "VIEW"
	EventNewUser  = "NEW_USER"
	EventCrash    = "CRASH"
	EventGoal     = "GOAL"
	EventDetached = "DETACHED"
	EventResumed  = "RESUMED"
	EventInactive = "INACTIVE"
	EventPaused   = "PAUSED"
)

// App is a registered client application, identified by its package name.
// Immutable once activities reference it.
type App struct {
	ID          uuid.UUID
	PackageName string
	CreatedAt   time.Time
}

// Visitor is one install/device of an App. The ID is the client-supplied
// UUID from the payload, never generated server-side, so identity is stable
// across out-of-order delivery.
type Visitor struct {
	ID           uuid.UUID
	AppID        uuid.UUID
	RegisteredAt time.Time
	// FirstSession distinguishes new from returning visitors without a
	// dedicated flag. Nil until the first session is attributed.
	FirstSessionID *uuid.UUID
	// FirstSessionStartedAt is loaded alongside FirstSessionID so the
	// resolver can compare without another round trip.
	FirstSessionStartedAt *time.Time
}

// Session is a contiguous window of a visitor's activity bounded by the
// inactivity gap. StartedAt only ever moves earlier, EndedAt only later.
type Session struct {
	ID        uuid.UUID
	AppID     uuid.UUID
	VisitorID uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration of the session window.
func (s *Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// Activity is one recorded event or action. Immutable once created; ordering
// for queries is OccuredAt, not insertion time.
type Activity struct {
	ID        uuid.UUID
	AppID     uuid.UUID
	VisitorID uuid.UUID
	SessionID uuid.UUID

	Category     Category
	ActivityType string
	// Properties is the serialized properties sub-object, empty if absent.
	Properties string
	OccuredAt  time.Time

	DeviceName     string
	DeviceOS       string
	PackageName    string
	PackageVersion string
	PackageBuild   string

	City    string
	Region  string
	Country string
}

// GeoInfo is the optional city/region/country annotation supplied per
// request by the geo enrichment collaborator.
type GeoInfo struct {
	City    string
	Region  string
	Country string
}
