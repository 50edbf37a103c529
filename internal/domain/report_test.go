package domain_test

import (
	"testing"
	"time"

	"github.com/dom/timesheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayRecord(t *testing.T, date string, clocks ...string) *domain.DayRecord {
	t.Helper()
	record := domain.NewDayRecord("user-1", date)
	for _, c := range clocks {
		record.AddEntry(at(t, date+" "+c))
	}
	return record
}

func TestWorkedSeconds(t *testing.T) {
	tests := []struct {
		name   string
		clocks []string
		want   int64
	}{
		{name: "no entries", want: 0},
		{name: "one entry", clocks: []string{"08:00:00"}, want: 0},
		{name: "one shift", clocks: []string{"08:00:00", "12:00:00"}, want: 4 * 3600},
		{name: "second shift incomplete", clocks: []string{"08:00:00", "12:00:00", "13:00:00"}, want: 4 * 3600},
		{name: "two shifts", clocks: []string{"08:00:00", "12:00:00", "14:00:00", "18:00:00"}, want: 8 * 3600},
		{name: "seconds count", clocks: []string{"08:00:00", "08:00:59"}, want: 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := dayRecord(t, "2023-12-11", tt.clocks...)
			assert.Equal(t, tt.want, domain.WorkedSeconds(record.Entries))
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2023-12"},
		{input: "1900-01"},
		{input: "2200-12"},
		{input: "2023-13", wantErr: true},
		{input: "2023-00", wantErr: true},
		{input: "abcd-01", wantErr: true},
		{input: "1899-12", wantErr: true},
		{input: "2201-01", wantErr: true},
		{input: "2023-1", wantErr: true},
		{input: "2023-12-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ym, err := domain.ParseYearMonth(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidMonthFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ym.String())
		})
	}
}

func TestYearMonth_BusinessDays(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{month: "2023-12", want: 21},
		{month: "2024-02", want: 21},
		{month: "2023-02", want: 20},
		{month: "2021-02", want: 20},
		{month: "2023-09", want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			ym, err := domain.ParseYearMonth(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ym.BusinessDays())
			assert.Equal(t, time.Duration(tt.want)*8*time.Hour, ym.ExpectedDuration())
		})
	}
}

func TestYearMonth_DateRange(t *testing.T) {
	ym, err := domain.ParseYearMonth("2023-12")
	require.NoError(t, err)

	from, to := ym.DateRange()
	assert.Equal(t, "2023-12-01", from)
	assert.Equal(t, "2024-01-01", to)
}

func TestFormatISODuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "P0Y0M0DT0H0M0S"},
		{name: "negative", d: -time.Hour, want: "P0Y0M0DT0H0M0S"},
		{name: "eight hours", d: 8 * time.Hour, want: "P0Y0M0DT8H0M0S"},
		{name: "sixteen hours", d: 16 * time.Hour, want: "P0Y0M0DT16H0M0S"},
		{name: "mixed", d: 3*time.Hour + 25*time.Minute + 7*time.Second, want: "P0Y0M0DT3H25M7S"},
		{name: "over a day", d: 160 * time.Hour, want: "P0Y0M6DT16H0M0S"},
		{name: "a full january", d: 31 * 24 * time.Hour, want: "P0Y1M0DT0H0M0S"},
		{name: "sub second dropped", d: time.Hour + 900*time.Millisecond, want: "P0Y0M0DT1H0M0S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatISODuration(tt.d))
		})
	}
}

func TestBuildMonthReport(t *testing.T) {
	ym, err := domain.ParseYearMonth("2023-12")
	require.NoError(t, err)

	t.Run("no days", func(t *testing.T) {
		_, err := domain.BuildMonthReport("user-1", ym, nil)
		assert.ErrorIs(t, err, domain.ErrMonthNotFound)
	})

	t.Run("deficit", func(t *testing.T) {
		days := []*domain.DayRecord{
			dayRecord(t, "2023-12-12", "08:00:00", "12:00:00"),
			dayRecord(t, "2023-12-11", "08:00:00", "12:00:00", "14:00:00", "18:00:00"),
		}

		report, err := domain.BuildMonthReport("user-1", ym, days)
		require.NoError(t, err)

		assert.Equal(t, "user-1", report.UserID)
		assert.Equal(t, 12*time.Hour, report.Worked)
		assert.Zero(t, report.Overtime)
		assert.Equal(t, 21*8*time.Hour-12*time.Hour, report.Deficit)
		require.Len(t, report.Days, 2)
		assert.Equal(t, "2023-12-11", report.Days[0].Date)
		assert.Equal(t, []string{"08:00:00", "12:00:00", "14:00:00", "18:00:00"}, report.Days[0].Entries)
		assert.Equal(t, "2023-12-12", report.Days[1].Date)
	})

	t.Run("overtime", func(t *testing.T) {
		var days []*domain.DayRecord
		for d := 1; d <= 31; d++ {
			date := time.Date(2023, time.December, d, 0, 0, 0, 0, time.UTC)
			if domain.IsWeekend(date) {
				continue
			}
			days = append(days, dayRecord(t, date.Format(domain.DateLayout), "07:00:00", "12:00:00", "13:00:00", "18:00:00"))
		}

		report, err := domain.BuildMonthReport("user-1", ym, days)
		require.NoError(t, err)

		assert.Equal(t, 21*10*time.Hour, report.Worked)
		assert.Equal(t, 21*2*time.Hour, report.Overtime)
		assert.Zero(t, report.Deficit)
	})

	t.Run("balanced", func(t *testing.T) {
		feb, err := domain.ParseYearMonth("2021-02")
		require.NoError(t, err)

		var days []*domain.DayRecord
		for d := 1; d <= 28; d++ {
			date := time.Date(2021, time.February, d, 0, 0, 0, 0, time.UTC)
			if domain.IsWeekend(date) {
				continue
			}
			days = append(days, dayRecord(t, date.Format(domain.DateLayout), "08:00:00", "12:00:00", "13:00:00", "17:00:00"))
		}

		report, err := domain.BuildMonthReport("user-1", feb, days)
		require.NoError(t, err)

		assert.Equal(t, 20*8*time.Hour, report.Worked)
		assert.Zero(t, report.Overtime)
		assert.Zero(t, report.Deficit)
	})
}
