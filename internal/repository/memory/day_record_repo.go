// Package memory provides an in-process day record store for tests and
// local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
	"gorm.io/datatypes"
)

type dayKey struct {
	userID string
	date   string
}

type DayRecordRepository struct {
	mu   sync.RWMutex
	days map[dayKey]*domain.DayRecord
}

func NewDayRecordRepository() *DayRecordRepository {
	return &DayRecordRepository{days: make(map[dayKey]*domain.DayRecord)}
}

func NewRepositories() *repository.Repositories {
	return NewRepositoriesFor(NewDayRecordRepository())
}

// NewRepositoriesFor wraps an existing store so callers can inspect it.
func NewRepositoriesFor(store *DayRecordRepository) *repository.Repositories {
	return &repository.Repositories{
		DayRecord: store,
	}
}

func (r *DayRecordRepository) FindDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	day, ok := r.days[dayKey{userID, date}]
	if !ok {
		return nil, repository.ErrDayNotFound
	}
	return clone(day), nil
}

func (r *DayRecordRepository) CreateDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey{userID, date}
	if day, ok := r.days[key]; ok {
		return clone(day), nil
	}

	day := domain.NewDayRecord(userID, date)
	now := time.Now()
	day.CreatedAt, day.UpdatedAt = now, now
	r.days[key] = day
	return clone(day), nil
}

func (r *DayRecordRepository) SaveDay(ctx context.Context, day *domain.DayRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := clone(day)
	saved.UpdatedAt = time.Now()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = saved.UpdatedAt
	}
	r.days[dayKey{day.UserID, day.Date}] = saved
	return nil
}

func (r *DayRecordRepository) FindDaysInMonth(ctx context.Context, userID string, ym domain.YearMonth) ([]*domain.DayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from, to := ym.DateRange()

	r.mu.RLock()
	var days []*domain.DayRecord
	for key, day := range r.days {
		if key.userID == userID && key.date >= from && key.date < to {
			days = append(days, clone(day))
		}
	}
	r.mu.RUnlock()

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// Count returns the number of stored records.
func (r *DayRecordRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.days)
}

func clone(day *domain.DayRecord) *domain.DayRecord {
	out := *day
	out.Entries = make(datatypes.JSONSlice[time.Time], len(day.Entries))
	copy(out.Entries, day.Entries)
	return &out
}
