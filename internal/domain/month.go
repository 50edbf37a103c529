package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	minReportYear = 1900
	maxReportYear = 2200

	// WorkdayDuration is the expected time worked on each business day.
	WorkdayDuration = 8 * time.Hour
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// YearMonth is a calendar month without a day.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	if !yearMonthPattern.MatchString(s) {
		return YearMonth{}, ErrInvalidMonthFormat
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return YearMonth{}, ErrInvalidMonthFormat
	}
	if year < minReportYear || year > maxReportYear {
		return YearMonth{}, ErrInvalidMonthFormat
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// First returns the first day of the month.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DateRange returns the [from, to) date strings covering the month.
func (ym YearMonth) DateRange() (string, string) {
	first := ym.First()
	return first.Format(DateLayout), first.AddDate(0, 1, 0).Format(DateLayout)
}

// BusinessDays counts the mondays to fridays of the month. Holidays are
// not taken into account.
func (ym YearMonth) BusinessDays() int {
	days := 0
	first := ym.First()
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days++
		}
	}
	return days
}

// ExpectedDuration is the time that should be worked over the month.
func (ym YearMonth) ExpectedDuration() time.Duration {
	return time.Duration(ym.BusinessDays()) * WorkdayDuration
}
