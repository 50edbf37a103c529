package postgres

import (
	"context"
	"errors"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dayRecordRepository struct {
	db *gorm.DB
}

func NewDayRecordRepository(db *gorm.DB) *dayRecordRepository {
	return &dayRecordRepository{db: db}
}

func (r *dayRecordRepository) FindDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	var day domain.DayRecord
	err := r.db.WithContext(ctx).First(&day, "user_id = ? AND work_date = ?", userID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *dayRecordRepository) CreateDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	day := domain.NewDayRecord(userID, date)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "work_date"}},
		DoNothing: true,
	}).Create(day).Error
	if err != nil {
		return nil, err
	}

	// Another writer may have won the insert; read back whichever row holds the key.
	return r.FindDay(ctx, userID, date)
}

func (r *dayRecordRepository) SaveDay(ctx context.Context, day *domain.DayRecord) error {
	return r.db.WithContext(ctx).Save(day).Error
}

func (r *dayRecordRepository) FindDaysInMonth(ctx context.Context, userID string, ym domain.YearMonth) ([]*domain.DayRecord, error) {
	from, to := ym.DateRange()

	var days []*domain.DayRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND work_date >= ? AND work_date < ?", userID, from, to).
		Order("work_date ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}
