package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
)

// MarkerStore persists the daily idempotency flag for the weekly reset.
type MarkerStore interface {
	Exists(date string) (bool, error)
	Set(date string) error
}

// ResetScheduler reverts completed tasks to pending once per week, at a
// configured weekday and time in a fixed reference timezone. The check runs
// on a short interval; a date-stamped marker guarantees at most one reset per
// calendar day even when several ticks land inside the trigger minute.
type ResetScheduler struct {
	taskRepo repository.TaskRepository
	markers  MarkerStore
	weekday  time.Weekday
	hour     int
	minute   int
	loc      *time.Location
	interval time.Duration
	cron     *cron.Cron

	// now is swapped by tests to drive the trigger window with a fake clock.
	now func() time.Time
}

// NewResetScheduler builds the scheduler. resetTime is HH:MM in loc.
func NewResetScheduler(
	taskRepo repository.TaskRepository,
	markers MarkerStore,
	weekday time.Weekday,
	resetTime string,
	loc *time.Location,
	interval time.Duration,
) (*ResetScheduler, error) {
	hour, minute, err := parseClock(resetTime)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &ResetScheduler{
		taskRepo: taskRepo,
		markers:  markers,
		weekday:  weekday,
		hour:     hour,
		minute:   minute,
		loc:      loc,
		interval: interval,
		cron:     cron.New(cron.WithLocation(loc)),
		now:      time.Now,
	}, nil
}

// Start begins the recurring check.
func (s *ResetScheduler) Start() error {
	spec := fmt.Sprintf("@every %ds", int(s.interval.Seconds()))
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.Check(context.Background()); err != nil {
			log.Printf("[ResetScheduler] check: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[ResetScheduler] started (trigger %s %02d:%02d %s, every %s)",
		s.weekday, s.hour, s.minute, s.loc, s.interval)
	return nil
}

// Stop halts the recurring check and waits for a running job to finish.
func (s *ResetScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[ResetScheduler] stopped")
}

// Check runs one evaluation of the trigger. It reports whether a reset was
// executed. A failed reset does not set the day marker, so the next tick
// retries.
func (s *ResetScheduler) Check(ctx context.Context) (bool, error) {
	now := s.now().In(s.loc)
	if now.Weekday() != s.weekday || now.Hour() != s.hour || now.Minute() != s.minute {
		return false, nil
	}

	marker := now.Format("2006-01-02")
	done, err := s.markers.Exists(marker)
	if err != nil {
		return false, fmt.Errorf("read marker %s: %w", marker, err)
	}
	if done {
		return false, nil
	}

	reset, err := s.taskRepo.ResetCompleted(ctx)
	if err != nil {
		return false, fmt.Errorf("reset completed tasks: %w", err)
	}

	if err := s.markers.Set(marker); err != nil {
		return true, fmt.Errorf("set marker %s: %w", marker, err)
	}
	log.Printf("[ResetScheduler] weekly reset done, %d tasks back to pending", reset)
	return true, nil
}

func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}
