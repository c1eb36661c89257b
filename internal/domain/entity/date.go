package entity

import "time"

// Accepted layouts for the calendar fields. Date-time values without a zone
// are read in local time; a plain date is UTC midnight.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateOnlyLayout = "2006-01-02"

// ParseDate parses a calendar field. ok is false for empty or unrecognised input.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, true
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOr parses value and falls back to fallback when it is empty or invalid.
func DateOr(value string, fallback time.Time) time.Time {
	if t, ok := ParseDate(value); ok {
		return t
	}
	return fallback
}
