package domain

import "errors"

// Time entry validation errors, in the order they are checked
var (
	ErrMissingField   = errors.New("time entry is required")
	ErrInvalidFormat  = errors.New("time entry has an invalid date-time format")
	ErrWeekendEntry   = errors.New("time entries are not allowed on saturdays and sundays")
	ErrMaxEntries     = errors.New("only 4 time entries can be registered per day")
	ErrDuplicateEntry = errors.New("time entry already registered")
	ErrLunchViolation = errors.New("lunch break must be at least 1 hour")
)

// Time sheet errors
var (
	ErrInvalidMonthFormat = errors.New("month must be formatted as YYYY-MM")
	ErrMonthNotFound      = errors.New("no time entries found for month")
)
