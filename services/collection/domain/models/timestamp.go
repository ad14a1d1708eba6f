package models

import "time"

// timestampLayout matches the ISO-8601 form browsers emit (millisecond precision, Z suffix).
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var parseLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// FormatTimestamp renders t in UTC as an ISO-8601 acquisition timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp parses an acquisition timestamp. ok is false for anything unparseable.
func ParseTimestamp(s string) (t time.Time, ok bool) {
	for _, layout := range parseLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
