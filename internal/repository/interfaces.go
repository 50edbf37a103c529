package repository

import (
	"context"
	"errors"

	"github.com/dom/timesheet/internal/domain"
)

// ErrDayNotFound is returned by FindDay when no record exists for the key.
var ErrDayNotFound = errors.New("day record not found")

// DayRecordRepository stores day records keyed by (user, date). Each key
// holds at most one record.
type DayRecordRepository interface {
	FindDay(ctx context.Context, userID, date string) (*domain.DayRecord, error)
	// CreateDay inserts an empty record unless one already exists, and
	// returns whichever record holds the key.
	CreateDay(ctx context.Context, userID, date string) (*domain.DayRecord, error)
	SaveDay(ctx context.Context, day *domain.DayRecord) error
	FindDaysInMonth(ctx context.Context, userID string, ym domain.YearMonth) ([]*domain.DayRecord, error)
}

type Repositories struct {
	DayRecord DayRecordRepository
}
