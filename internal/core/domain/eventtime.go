package domain

import (
	"strconv"
	"time"
)

// EventTime is a normalized record timestamp. Fallback is true when the
// upstream value could not be parsed and the current time was substituted,
// so callers can distinguish "we know when this happened" from "we guessed".
type EventTime struct {
	Time     time.Time
	Fallback bool
}

// timestamp layouts observed in upstream responses.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime normalizes a raw upstream creation timestamp. The value may
// be a textual layout or a numeric Unix epoch (seconds, possibly fractional).
// Anything unrecognized yields now with Fallback set.
func ParseEventTime(raw string, now time.Time) EventTime {
	if raw == "" {
		return EventTime{Time: now, Fallback: true}
	}

	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return EventTime{Time: t.UTC()}
		}
	}

	if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
		whole := int64(secs)
		frac := secs - float64(whole)
		return EventTime{Time: time.Unix(whole, int64(frac*1e9)).UTC()}
	}

	return EventTime{Time: now, Fallback: true}
}
