// Package lock serializes work on a single (user, date) day record.
package lock

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotObtained is returned when a lock could not be acquired before the
// context expired.
var ErrNotObtained = errors.New("lock not obtained")

// Locker grants exclusive access to a key. The returned function releases
// the lock and is safe to call more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// DayKey is the lock key of a user's day record.
func DayKey(userID, date string) string {
	return fmt.Sprintf("timesheet:day:%s:%s", userID, date)
}
