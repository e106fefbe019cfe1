package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
)

type memMarkers struct {
	dates map[string]bool
	err   error
}

func newMemMarkers() *memMarkers {
	return &memMarkers{dates: make(map[string]bool)}
}

func (m *memMarkers) Exists(date string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.dates[date], nil
}

func (m *memMarkers) Set(date string) error {
	if m.err != nil {
		return m.err
	}
	m.dates[date] = true
	return nil
}

func newTestScheduler(t *testing.T, repo repository.TaskRepository, markers MarkerStore) *ResetScheduler {
	t.Helper()
	sched, err := NewResetScheduler(repo, markers, time.Wednesday, "00:00", time.UTC, time.Minute)
	require.NoError(t, err)
	return sched
}

func seedDone(t *testing.T, repo *repository.MemoryTaskRepository, titles ...string) {
	t.Helper()
	completed := time.Now()
	for _, title := range titles {
		task := &domain.Task{
			Title:       title,
			DayOfWeek:   domain.Monday,
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusDone,
			CompletedAt: &completed,
		}
		require.NoError(t, repo.Create(context.Background(), task))
	}
}

func TestCheckOutsideTriggerWindow(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	seedDone(t, repo, "A")
	sched := newTestScheduler(t, repo, newMemMarkers())

	// Wednesday, but not at the trigger minute.
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC) }
	ran, err := sched.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)

	// Trigger minute, wrong weekday.
	sched.now = func() time.Time { return time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC) }
	ran, err = sched.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)

	tasks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, tasks[0].Status)
}

func TestCheckRunsOncePerDay(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	seedDone(t, repo, "A", "B")
	markers := newMemMarkers()
	sched := newTestScheduler(t, repo, markers)

	// 2025-03-12 is a Wednesday.
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 0, 0, 15, 0, time.UTC) }

	ran, err := sched.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, markers.dates["2025-03-12"])

	tasks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	for _, task := range tasks {
		assert.Equal(t, domain.StatusPending, task.Status)
		assert.Nil(t, task.CompletedAt)
	}

	// A second tick inside the same minute is a no-op.
	seedDone(t, repo, "C")
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 0, 0, 45, 0, time.UTC) }
	ran, err = sched.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestCheckRunsAgainNextWeek(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	markers := newMemMarkers()
	sched := newTestScheduler(t, repo, markers)

	seedDone(t, repo, "A")
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC) }
	ran, err := sched.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)

	// 2025-03-19 is the following Wednesday; its marker is fresh.
	seedDone(t, repo, "B")
	sched.now = func() time.Time { return time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC) }
	ran, err = sched.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, markers.dates["2025-03-19"])
}

func TestFailedResetLeavesMarkerUnsetForRetry(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	seedDone(t, repo, "A")
	markers := newMemMarkers()
	sched := newTestScheduler(t, repo, markers)
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC) }

	boom := errors.New("store unavailable")
	repo.FailWith = boom
	ran, err := sched.Check(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
	assert.False(t, markers.dates["2025-03-12"])

	// The next tick retries and succeeds.
	repo.FailWith = nil
	ran, err = sched.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)

	tasks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, tasks[0].Status)
}

func TestMarkerReadErrorPropagates(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	markers := newMemMarkers()
	markers.err = errors.New("database locked")
	sched := newTestScheduler(t, repo, markers)
	sched.now = func() time.Time { return time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC) }

	ran, err := sched.Check(context.Background())
	assert.Error(t, err)
	assert.False(t, ran)
}

func TestParseClock(t *testing.T) {
	hour, minute, err := parseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 45, minute)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd"} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, "value %q", bad)
	}
}
