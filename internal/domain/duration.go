package domain

import (
	"fmt"
	"time"
)

// FormatISODuration renders d as an ISO 8601 duration with every component
// present, e.g. P0Y0M0DT8H0M0S. The elapsed time is split into calendar
// years, months and days counted from the Unix epoch, then hours, minutes
// and seconds. Negative durations render as zero.
func FormatISODuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	start := time.Unix(0, 0).UTC()
	end := start.Add(d.Truncate(time.Second))

	years := 0
	for !start.AddDate(years+1, 0, 0).After(end) {
		years++
	}
	cursor := start.AddDate(years, 0, 0)

	months := 0
	for !cursor.AddDate(0, months+1, 0).After(end) {
		months++
	}
	cursor = cursor.AddDate(0, months, 0)

	rest := end.Sub(cursor)
	days := int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	hours := int(rest / time.Hour)
	rest -= time.Duration(hours) * time.Hour
	minutes := int(rest / time.Minute)
	rest -= time.Duration(minutes) * time.Minute
	seconds := int(rest / time.Second)

	return fmt.Sprintf("P%dY%dM%dDT%dH%dM%dS", years, months, days, hours, minutes, seconds)
}
