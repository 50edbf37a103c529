package postgres

import (
	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables and the (user_id, work_date) unique index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.DayRecord{})
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		DayRecord: NewDayRecordRepository(db),
	}
}
