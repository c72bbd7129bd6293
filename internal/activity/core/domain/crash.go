package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoCrashSignature is returned when a CRASH event carries neither a
	// stack trace nor an exception message.
	ErrNoCrashSignature = errors.New("crash properties carry no stack_trace or exception")
	// ErrNoGoalName is returned when a GOAL event carries no goal name.
	ErrNoGoalName = errors.New("goal properties carry no goal name")
)

// Crash groups activities sharing a stack signature within one app.
// FirstAt/LastAt are the min/max OccuredAt across linked activities,
// maintained incrementally on each link.
type Crash struct {
	ID        uuid.UUID
	AppID     uuid.UUID
	Signature string
	FirstAt   time.Time
	LastAt    time.Time
}

// Goal groups activities sharing a goal name within one app. Same shape as
// Crash, keyed by name instead of a digest.
type Goal struct {
	ID      uuid.UUID
	AppID   uuid.UUID
	Name    string
	FirstAt time.Time
	LastAt  time.Time
}

type signatureSource int

const (
	sourceStackTrace signatureSource = iota
	sourceException
)

// CrashSignature is the content a crash is grouped by: the stack trace when
// present and non-empty, otherwise the exception message. The tagged form
// keeps the fallback explicit instead of an ad hoc field-presence check.
type CrashSignature struct {
	source signatureSource
	value  string
}

func StackTraceSignature(trace string) CrashSignature {
	return CrashSignature{source: sourceStackTrace, value: trace}
}

func ExceptionSignature(message string) CrashSignature {
	return CrashSignature{source: sourceException, value: message}
}

// CrashSignatureFromProperties selects the signature source from a CRASH
// event's decoded properties.
func CrashSignatureFromProperties(props map[string]any) (CrashSignature, error) {
	if trace, ok := props["stack_trace"].(string); ok && trace != "" {
		return StackTraceSignature(trace), nil
	}
	if msg, ok := props["exception"].(string); ok && msg != "" {
		return ExceptionSignature(msg), nil
	}
	return CrashSignature{}, ErrNoCrashSignature
}

// Hash returns the stable hex digest used as the grouping key. The digest is
// content addressing, not security-sensitive.
func (s CrashSignature) Hash() string {
	sum := sha1.Sum([]byte(s.value))
	return hex.EncodeToString(sum[:])
}

// GoalNameFromProperties extracts the goal name from a GOAL event's decoded
// properties.
func GoalNameFromProperties(props map[string]any) (string, error) {
	if name, ok := props["goal"].(string); ok && name != "" {
		return name, nil
	}
	return "", ErrNoGoalName
}
