package usecase

import (
	"errors"
	"time"
)

// Clients send timestamps in a handful of ISO-8601-ish shapes depending on
// platform. Layouts are tried in order; naive timestamps are taken as UTC.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errUnparsableTime = errors.New("unparsable timestamp")

func parseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnparsableTime
}
