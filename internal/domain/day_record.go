package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxEntriesPerDay is the number of time entries a day record can hold.
const MaxEntriesPerDay = 4

// DayRecord holds the accepted time entries of one user on one calendar date.
// Entries are kept sorted ascending and unique at second granularity.
type DayRecord struct {
	ID        uuid.UUID                      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string                         `json:"userId" gorm:"not null;uniqueIndex:idx_day_records_user_date"`
	Date      string                         `json:"date" gorm:"column:work_date;size:10;not null;uniqueIndex:idx_day_records_user_date"` // YYYY-MM-DD
	Entries   datatypes.JSONSlice[time.Time] `json:"entries" gorm:"not null"`
	CreatedAt time.Time                      `json:"createdAt"`
	UpdatedAt time.Time                      `json:"updatedAt"`
}

// NewDayRecord returns an empty record for userID on date.
func NewDayRecord(userID, date string) *DayRecord {
	return &DayRecord{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    date,
		Entries: datatypes.JSONSlice[time.Time]{},
	}
}

// Times returns a copy of the record's entries.
func (d *DayRecord) Times() []time.Time {
	out := make([]time.Time, len(d.Entries))
	copy(out, d.Entries)
	return out
}

// AddEntry inserts t keeping entries in chronological order. It does not
// validate; callers run the entry through the validator first.
func (d *DayRecord) AddEntry(t time.Time) {
	d.Entries = append(d.Entries, t)
	sortTimes(d.Entries)
}

// Clock returns the entries formatted as HH:MM:SS.
func (d *DayRecord) Clock() []string {
	out := make([]string, len(d.Entries))
	for i, t := range d.Entries {
		out[i] = t.Format(ClockLayout)
	}
	return out
}

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
}
