package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/lock"
	"github.com/dom/timesheet/internal/repository"
	"go.uber.org/zap"
)

type TimeEntryService struct {
	dayRepo repository.DayRecordRepository
	locker  lock.Locker
	log     *zap.Logger
}

func NewTimeEntryService(dayRepo repository.DayRecordRepository, locker lock.Locker, log *zap.Logger) *TimeEntryService {
	return &TimeEntryService{
		dayRepo: dayRepo,
		locker:  locker,
		log:     log,
	}
}

// AddTimeEntry validates raw and appends it to the user's day record,
// creating the record on the first entry of the day. Malformed and weekend
// entries are rejected before the store is touched.
func (s *TimeEntryService) AddTimeEntry(ctx context.Context, userID, raw string) (*domain.DayRecord, error) {
	entry, err := domain.ValidateInput(raw)
	if err != nil {
		return nil, err
	}
	date := domain.EntryDate(entry)

	unlock, err := s.locker.Lock(ctx, lock.DayKey(userID, date))
	if err != nil {
		s.log.Error("failed to lock day record", zap.String("user_id", userID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer unlock()

	day, err := s.getOrCreateDay(ctx, userID, date)
	if err != nil {
		s.log.Error("failed to load day record", zap.String("user_id", userID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if err := domain.ValidateAgainst(day.Times(), entry); err != nil {
		return nil, err
	}

	day.AddEntry(entry)
	if err := s.dayRepo.SaveDay(ctx, day); err != nil {
		s.log.Error("failed to save day record", zap.String("user_id", userID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	s.log.Debug("time entry added",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.Strings("entries", day.Clock()),
	)
	return day, nil
}

func (s *TimeEntryService) getOrCreateDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	day, err := s.dayRepo.FindDay(ctx, userID, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, repository.ErrDayNotFound) {
		return nil, err
	}
	return s.dayRepo.CreateDay(ctx, userID, date)
}
