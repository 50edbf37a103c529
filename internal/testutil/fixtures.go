package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// DayRecordBuilder creates test day records with a builder pattern
type DayRecordBuilder struct {
	userID string
	date   string
	clocks []string
}

// NewDayRecordBuilder creates a new DayRecordBuilder with default values
func NewDayRecordBuilder() *DayRecordBuilder {
	return &DayRecordBuilder{
		userID: fmt.Sprintf("user_%s", uuid.New().String()[:8]),
		date:   "2023-12-11",
	}
}

// WithUser sets the owner of the record
func (b *DayRecordBuilder) WithUser(userID string) *DayRecordBuilder {
	b.userID = userID
	return b
}

// WithDate sets the record date (YYYY-MM-DD)
func (b *DayRecordBuilder) WithDate(date string) *DayRecordBuilder {
	b.date = date
	return b
}

// WithEntries sets the entries as HH:MM:SS clocks on the record date
func (b *DayRecordBuilder) WithEntries(clocks ...string) *DayRecordBuilder {
	b.clocks = clocks
	return b
}

// Record returns the record without storing it
func (b *DayRecordBuilder) Record(t *testing.T) *domain.DayRecord {
	t.Helper()

	day := domain.NewDayRecord(b.userID, b.date)
	for _, c := range b.clocks {
		entry, err := time.Parse("2006-01-02 15:04:05", b.date+" "+c)
		require.NoError(t, err)
		day.AddEntry(entry)
	}
	return day
}

// Build stores the record through repo and returns it
func (b *DayRecordBuilder) Build(t *testing.T, repo repository.DayRecordRepository) *domain.DayRecord {
	t.Helper()

	ctx := context.Background()
	created, err := repo.CreateDay(ctx, b.userID, b.date)
	require.NoError(t, err)

	day := b.Record(t)
	day.ID = created.ID
	day.CreatedAt = created.CreatedAt
	require.NoError(t, repo.SaveDay(ctx, day))
	return day
}

// SeedWorkMonth stores a day with the given clocks on every business day of ym
func SeedWorkMonth(t *testing.T, repo repository.DayRecordRepository, userID string, ym domain.YearMonth, clocks ...string) int {
	t.Helper()

	seeded := 0
	first := ym.First()
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if domain.IsWeekend(d) {
			continue
		}
		NewDayRecordBuilder().
			WithUser(userID).
			WithDate(d.Format(domain.DateLayout)).
			WithEntries(clocks...).
			Build(t, repo)
		seeded++
	}
	return seeded
}

// PostTimeEntry submits an entry to the server as userID. An empty userID
// sends no X-UserId header.
func PostTimeEntry(t *testing.T, ts *TestServer, userID string, moment string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"momento": moment})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.APIURL("/batidas"), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-UserId", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// GetMonthReport fetches the month report of userID
func GetMonthReport(t *testing.T, ts *TestServer, userID, yearMonth string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.APIURL("/folhas-de-ponto/"+yearMonth), nil)
	require.NoError(t, err)
	if userID != "" {
		req.Header.Set("X-UserId", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
