package domain

import (
	"sort"
	"time"
)

// DaySummary is a day record as it appears in a month report.
type DaySummary struct {
	Date    string
	Entries []string
	Worked  time.Duration
}

// MonthReport compares the time a user worked in a month with the expected
// business-day hours. It is always derived from the day records.
type MonthReport struct {
	UserID    string
	YearMonth YearMonth
	Worked    time.Duration
	Overtime  time.Duration
	Deficit   time.Duration
	Days      []DaySummary
}

// BuildMonthReport aggregates the day records of one user in one month.
func BuildMonthReport(userID string, ym YearMonth, days []*DayRecord) (*MonthReport, error) {
	if len(days) == 0 {
		return nil, ErrMonthNotFound
	}

	sorted := make([]*DayRecord, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var workedSeconds int64
	summaries := make([]DaySummary, 0, len(sorted))
	for _, day := range sorted {
		seconds := WorkedSeconds(day.Entries)
		workedSeconds += seconds
		summaries = append(summaries, DaySummary{
			Date:    day.Date,
			Entries: day.Clock(),
			Worked:  time.Duration(seconds) * time.Second,
		})
	}

	worked := time.Duration(workedSeconds) * time.Second
	balance := worked - ym.ExpectedDuration()

	report := &MonthReport{
		UserID:    userID,
		YearMonth: ym,
		Worked:    worked,
		Days:      summaries,
	}
	if balance > 0 {
		report.Overtime = balance
	} else {
		report.Deficit = -balance
	}
	return report, nil
}
