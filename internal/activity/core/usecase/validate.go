package usecase

import (
	"fmt"

	"mobile-analytics-service/internal/activity/core/domain"

	"github.com/google/uuid"
)

var eventTypes = map[string]bool{
	domain.EventView:     true,
	domain.EventNewUser:  true,
	domain.EventCrash:    true,
	domain.EventGoal:     true,
	domain.EventDetached: true,
	domain.EventResumed:  true,
	domain.EventInactive: true,
	domain.EventPaused:   true,
}

func discriminatorKey(category domain.Category) string {
	if category == domain.CategoryAction {
		return "action"
	}
	return "event"
}

// ParseRecord validates a raw payload record and builds the domain record.
// It is pure: no side effects, first failure wins, and every failure wraps
// ErrInvalidRecord with the offending field.
func ParseRecord(category domain.Category, raw map[string]any) (*domain.Record, error) {
	key := discriminatorKey(category)

	body, ok := raw[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrInvalidRecord, key)
	}

	activityType, ok := body["type"].(string)
	if !ok || activityType == "" {
		return nil, fmt.Errorf("%w: missing %s.type", ErrInvalidRecord, key)
	}
	// time must be a JSON string; a numeric timestamp is rejected.
	rawTime, ok := body["time"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing or non-string %s.time", ErrInvalidRecord, key)
	}

	if category == domain.CategoryEvent && !eventTypes[activityType] {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidRecord, activityType)
	}

	pkg, ok := raw["package"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing package", ErrInvalidRecord)
	}
	pkgName, ok := pkg["name"].(string)
	if !ok || pkgName == "" {
		return nil, fmt.Errorf("%w: missing package.name", ErrInvalidRecord)
	}
	pkgVersion, ok := pkg["version"].(string)
	if !ok || pkgVersion == "" {
		return nil, fmt.Errorf("%w: missing package.version", ErrInvalidRecord)
	}
	pkgBuild, ok := pkg["build"].(string)
	if !ok || pkgBuild == "" {
		return nil, fmt.Errorf("%w: missing package.build", ErrInvalidRecord)
	}

	device, ok := raw["device"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing device", ErrInvalidRecord)
	}
	deviceName, ok := device["name"].(string)
	if !ok || deviceName == "" {
		return nil, fmt.Errorf("%w: missing device.name", ErrInvalidRecord)
	}
	deviceOS, ok := device["os"].(string)
	if !ok || deviceOS == "" {
		return nil, fmt.Errorf("%w: missing device.os", ErrInvalidRecord)
	}

	rawVisitor, ok := raw["visitor_id"].(string)
	if !ok || rawVisitor == "" {
		return nil, fmt.Errorf("%w: missing visitor_id", ErrInvalidRecord)
	}
	// Accepts the canonical hyphenated form as well as braced, urn and raw
	// 32-digit hex representations.
	visitorID, err := uuid.Parse(rawVisitor)
	if err != nil {
		return nil, fmt.Errorf("%w: visitor_id is not a UUID", ErrInvalidRecord)
	}

	eventTime, err := parseEventTime(rawTime)
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable %s.time %q", ErrInvalidRecord, key, rawTime)
	}

	rec := &domain.Record{
		Category:       category,
		ActivityType:   activityType,
		EventTime:      eventTime,
		PackageName:    pkgName,
		PackageVersion: pkgVersion,
		PackageBuild:   pkgBuild,
		DeviceName:     deviceName,
		DeviceOS:       deviceOS,
		VisitorID:      visitorID,
	}
	if props, ok := body["properties"].(map[string]any); ok {
		rec.Properties = props
	}
	return rec, nil
}
