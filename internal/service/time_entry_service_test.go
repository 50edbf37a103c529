package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/lock"
	"github.com/dom/timesheet/internal/repository/memory"
	"github.com/dom/timesheet/internal/service"
	"github.com/dom/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeEntryService(t *testing.T) (*service.TimeEntryService, *memory.DayRecordRepository) {
	t.Helper()
	store := memory.NewDayRecordRepository()
	return service.NewTimeEntryService(store, lock.NewLocalLocker(), testutil.TestLogger(t)), store
}

func TestTimeEntryService_AddTimeEntry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		existing []string
		raw      string
		wantErr  error
		want     []string
	}{
		{name: "first entry creates the day", raw: "2023-12-11 08:00:00", want: []string{"08:00:00"}},
		{name: "second entry", existing: []string{"08:00:00"}, raw: "2023-12-11 12:00:00", want: []string{"08:00:00", "12:00:00"}},
		{
			name:     "out of order entry is sorted",
			existing: []string{"12:00:00"},
			raw:      "2023-12-11 08:00:00",
			want:     []string{"08:00:00", "12:00:00"},
		},
		{name: "missing", raw: "", wantErr: domain.ErrMissingField},
		{name: "invalid", raw: "2023-02-30 08:00:00", wantErr: domain.ErrInvalidFormat},
		{name: "weekend", raw: "2023-12-16 08:00:00", wantErr: domain.ErrWeekendEntry},
		{
			name:     "max entries",
			existing: []string{"08:00:00", "12:00:00", "14:00:00", "18:00:00"},
			raw:      "2023-12-11 19:00:00",
			wantErr:  domain.ErrMaxEntries,
		},
		{name: "duplicate", existing: []string{"08:00:00"}, raw: "2023-12-11 08:00:00.250", wantErr: domain.ErrDuplicateEntry},
		{
			name:     "lunch violation",
			existing: []string{"08:00:00", "12:00:00"},
			raw:      "2023-12-11 12:30:00",
			wantErr:  domain.ErrLunchViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTimeEntryService(t)
			if tt.existing != nil {
				testutil.NewDayRecordBuilder().
					WithUser("user-1").
					WithDate("2023-12-11").
					WithEntries(tt.existing...).
					Build(t, store)
			}

			day, err := svc.AddTimeEntry(ctx, "user-1", tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, service.ErrStore)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", day.UserID)
			assert.Equal(t, "2023-12-11", day.Date)
			assert.Equal(t, tt.want, day.Clock())

			stored, err := store.FindDay(ctx, "user-1", "2023-12-11")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Clock())
		})
	}
}

func TestTimeEntryService_RejectedEntryDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	svc, store := newTimeEntryService(t)

	testutil.NewDayRecordBuilder().
		WithUser("user-1").
		WithEntries("08:00:00", "12:00:00").
		Build(t, store)

	_, err := svc.AddTimeEntry(ctx, "user-1", "2023-12-11 12:30:00")
	require.ErrorIs(t, err, domain.ErrLunchViolation)

	stored, err := store.FindDay(ctx, "user-1", "2023-12-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00:00", "12:00:00"}, stored.Clock())
}

func TestTimeEntryService_InputChecksSkipStore(t *testing.T) {
	ctx := context.Background()

	for _, raw := range []string{"", "2023-13-01 08:00:00", "2023-12-16 08:00:00", "2023-12-17 23:59:59"} {
		t.Run(raw, func(t *testing.T) {
			store := testutil.NewCountingDayRecordRepository(memory.NewDayRecordRepository())
			svc := service.NewTimeEntryService(store, lock.NewLocalLocker(), testutil.TestLogger(t))

			_, err := svc.AddTimeEntry(ctx, "user-1", raw)
			require.Error(t, err)
			assert.Zero(t, store.Calls())
		})
	}
}

func TestTimeEntryService_FullDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTimeEntryService(t)

	var day *domain.DayRecord
	var err error
	for _, raw := range []string{"2023-12-11 08:00:00", "2023-12-11 12:00:00", "2023-12-11 14:00:00", "2023-12-11 18:00:00"} {
		day, err = svc.AddTimeEntry(ctx, "user-1", raw)
		require.NoError(t, err, raw)
	}

	require.Len(t, day.Entries, 4)
	assert.Equal(t, int64(28800), domain.WorkedSeconds(day.Entries))

	_, err = svc.AddTimeEntry(ctx, "user-1", "2023-12-11 20:00:00")
	assert.ErrorIs(t, err, domain.ErrMaxEntries)
}

func TestTimeEntryService_UsersAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, store := newTimeEntryService(t)

	_, err := svc.AddTimeEntry(ctx, "user-1", "2023-12-11 08:00:00")
	require.NoError(t, err)
	day, err := svc.AddTimeEntry(ctx, "user-2", "2023-12-11 08:00:00")
	require.NoError(t, err)

	assert.Equal(t, "user-2", day.UserID)
	assert.Equal(t, 2, store.Count())
}

func TestTimeEntryService_ConcurrentFirstEntries(t *testing.T) {
	ctx := context.Background()
	svc, store := newTimeEntryService(t)

	raws := []string{"2023-12-11 08:00:00", "2023-12-11 12:00:00"}

	var wg sync.WaitGroup
	errs := make([]error, len(raws))
	for i, raw := range raws {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			_, errs[i] = svc.AddTimeEntry(ctx, "user-1", raw)
		}(i, raw)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, store.Count())

	stored, err := store.FindDay(ctx, "user-1", "2023-12-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00:00", "12:00:00"}, stored.Clock())
}

func TestTimeEntryService_ConcurrentEntriesNeverExceedMax(t *testing.T) {
	ctx := context.Background()
	svc, store := newTimeEntryService(t)

	var wg sync.WaitGroup
	for h := 6; h < 18; h++ {
		wg.Add(1)
		go func(h int) {
			defer wg.Done()
			svc.AddTimeEntry(ctx, "user-1", fmt.Sprintf("2023-12-11 %02d:00:00", h))
		}(h)
	}
	wg.Wait()

	stored, err := store.FindDay(ctx, "user-1", "2023-12-11")
	require.NoError(t, err)
	assert.Len(t, stored.Entries, domain.MaxEntriesPerDay)
	for i := 1; i < len(stored.Entries); i++ {
		assert.True(t, stored.Entries[i].After(stored.Entries[i-1]))
	}
	assert.GreaterOrEqual(t, stored.Entries[2].Sub(stored.Entries[1]), domain.MinLunchBreak)
}

func TestTimeEntryService_StoreFailure(t *testing.T) {
	svc := service.NewTimeEntryService(testutil.FailingDayRecordRepository{}, lock.NewLocalLocker(), testutil.TestLogger(t))

	_, err := svc.AddTimeEntry(context.Background(), "user-1", "2023-12-11 08:00:00")
	assert.ErrorIs(t, err, service.ErrStore)
	assert.ErrorIs(t, err, testutil.ErrStoreDown)
}

func TestTimeEntryService_LockTimeout(t *testing.T) {
	locker := lock.NewLocalLocker()
	svc := service.NewTimeEntryService(memory.NewDayRecordRepository(), locker, testutil.TestLogger(t))

	unlock, err := locker.Lock(context.Background(), lock.DayKey("user-1", "2023-12-11"))
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.AddTimeEntry(ctx, "user-1", "2023-12-11 08:00:00")
	assert.ErrorIs(t, err, service.ErrStore)
	assert.ErrorIs(t, err, lock.ErrNotObtained)
}
