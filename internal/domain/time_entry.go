package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used for day records.
	DateLayout = "2006-01-02"
	// ClockLayout is how a single entry is rendered inside a day.
	ClockLayout = "15:04:05"
)

// entryPattern requires two-digit fields throughout; time.Parse alone
// would accept a single-digit hour.
var entryPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

// Layouts accepted for a raw time entry. Fractional seconds are accepted by
// time.Parse after the seconds field even when the layout omits them.
var entryLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
}

// ParseTimeEntry parses a raw instant into a TimeEntry. The wall clock is
// kept exactly as written and the result is truncated to the second.
func ParseTimeEntry(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingField
	}
	if !entryPattern.MatchString(raw) {
		return time.Time{}, ErrInvalidFormat
	}

	for _, layout := range entryLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidFormat
}

// EntryDate returns the calendar date an entry belongs to.
func EntryDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsWeekend reports whether t falls on a saturday or sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameSecond reports whether a and b are equal at second granularity.
func SameSecond(a, b time.Time) bool {
	return a.Truncate(time.Second).Equal(b.Truncate(time.Second))
}
