package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyStat is one day of session/visitor counts for an app.
type DailyStat struct {
	Day      time.Time
	Sessions int64
	Visitors int64
}

// CrashGroup is a crash row with its association-set sizes.
type CrashGroup struct {
	ID            uuid.UUID
	Signature     string
	FirstAt       time.Time
	LastAt        time.Time
	SessionCount  int64
	ActivityCount int64
}

// GoalGroup is a goal row with its association-set sizes.
type GoalGroup struct {
	ID            uuid.UUID
	Name          string
	FirstAt       time.Time
	LastAt        time.Time
	SessionCount  int64
	ActivityCount int64
}
