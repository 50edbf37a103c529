package testutil

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
)

// ErrStoreDown is returned by FailingDayRecordRepository.
var ErrStoreDown = errors.New("store down")

// CountingDayRecordRepository counts the calls made to the wrapped store
type CountingDayRecordRepository struct {
	repository.DayRecordRepository
	calls atomic.Int64
}

func NewCountingDayRecordRepository(inner repository.DayRecordRepository) *CountingDayRecordRepository {
	return &CountingDayRecordRepository{DayRecordRepository: inner}
}

// Calls returns the number of store calls so far
func (r *CountingDayRecordRepository) Calls() int64 {
	return r.calls.Load()
}

func (r *CountingDayRecordRepository) FindDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	r.calls.Add(1)
	return r.DayRecordRepository.FindDay(ctx, userID, date)
}

func (r *CountingDayRecordRepository) CreateDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	r.calls.Add(1)
	return r.DayRecordRepository.CreateDay(ctx, userID, date)
}

func (r *CountingDayRecordRepository) SaveDay(ctx context.Context, day *domain.DayRecord) error {
	r.calls.Add(1)
	return r.DayRecordRepository.SaveDay(ctx, day)
}

func (r *CountingDayRecordRepository) FindDaysInMonth(ctx context.Context, userID string, ym domain.YearMonth) ([]*domain.DayRecord, error) {
	r.calls.Add(1)
	return r.DayRecordRepository.FindDaysInMonth(ctx, userID, ym)
}

// FailingDayRecordRepository fails every call with ErrStoreDown
type FailingDayRecordRepository struct{}

func (FailingDayRecordRepository) FindDay(context.Context, string, string) (*domain.DayRecord, error) {
	return nil, ErrStoreDown
}

func (FailingDayRecordRepository) CreateDay(context.Context, string, string) (*domain.DayRecord, error) {
	return nil, ErrStoreDown
}

func (FailingDayRecordRepository) SaveDay(context.Context, *domain.DayRecord) error {
	return ErrStoreDown
}

func (FailingDayRecordRepository) FindDaysInMonth(context.Context, string, domain.YearMonth) ([]*domain.DayRecord, error) {
	return nil, ErrStoreDown
}
