package service

import (
	"context"
	"fmt"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
	"go.uber.org/zap"
)

type TimeSheetService struct {
	dayRepo repository.DayRecordRepository
	log     *zap.Logger
}

func NewTimeSheetService(dayRepo repository.DayRecordRepository, log *zap.Logger) *TimeSheetService {
	return &TimeSheetService{
		dayRepo: dayRepo,
		log:     log,
	}
}

// GetMonthReport builds the month report of userID for yearMonth (YYYY-MM).
// The report is recomputed from the stored day records on every call.
func (s *TimeSheetService) GetMonthReport(ctx context.Context, userID, yearMonth string) (*domain.MonthReport, error) {
	ym, err := domain.ParseYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}

	days, err := s.dayRepo.FindDaysInMonth(ctx, userID, ym)
	if err != nil {
		s.log.Error("failed to list day records", zap.String("user_id", userID), zap.String("month", yearMonth), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return domain.BuildMonthReport(userID, ym, days)
}
