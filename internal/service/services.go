package service

import (
	"github.com/dom/timesheet/internal/lock"
	"github.com/dom/timesheet/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	TimeEntry *TimeEntryService
	TimeSheet *TimeSheetService
}

func NewServices(repos *repository.Repositories, locker lock.Locker, log *zap.Logger) *Services {
	return &Services{
		TimeEntry: NewTimeEntryService(repos.DayRecord, locker, log),
		TimeSheet: NewTimeSheetService(repos.DayRecord, log),
	}
}
