package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is a validated telemetry record, ready for attribution. It is built
// by the validator from the raw payload; nothing downstream re-checks fields.
type Record struct {
	Category     Category
	ActivityType string
	EventTime    time.Time
	// Properties is the raw properties sub-object, nil when absent.
	Properties map[string]any

	PackageName    string
	PackageVersion string
	PackageBuild   string
	DeviceName     string
	DeviceOS       string

	VisitorID uuid.UUID
}

// IsCrash reports whether this record should feed the crash aggregator.
func (r *Record) IsCrash() bool {
	return r.Category == CategoryEvent && r.ActivityType == EventCrash
}

// IsGoal reports whether this record should feed the goal aggregator.
func (r *Record) IsGoal() bool {
	return r.Category == CategoryEvent && r.ActivityType == EventGoal
}
