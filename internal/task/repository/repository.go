package repository

import (
	"context"
	"errors"
	"time"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// ErrNotFound is returned when a task ID does not resolve to a document.
var ErrNotFound = errors.New("task not found")

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// ListByDay returns the tasks of one weekday ordered by order_position ascending.
	ListByDay(ctx context.Context, day domain.DayOfWeek) ([]*domain.Task, error)

	// ListAll returns every task, ordered by day (canonical) then order_position.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// ListCreatedBetween returns tasks with start <= created_at < end,
	// newest first.
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*domain.Task, error)

	// RecentCompleted returns up to limit completed tasks, most recently
	// completed first.
	RecentCompleted(ctx context.Context, limit int) ([]*domain.Task, error)

	// FindByID returns the task or ErrNotFound.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// Create stores a new task, assigning its ID when empty.
	Create(ctx context.Context, task *domain.Task) error

	// Update saves the full task document and refreshes updated_at.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task permanently. Sibling order positions are not
	// reindexed; gaps are tolerated.
	Delete(ctx context.Context, id string) error

	// UpdateOrderPositions writes new order positions for a set of tasks as a
	// single atomic commit. On error no position change is persisted.
	UpdateOrderPositions(ctx context.Context, positions map[string]int) error

	// ResetCompleted moves every completed task back to pending and clears
	// completed_at. The updates are individual writes; partial failure leaves
	// some tasks reset. Returns the number of tasks reset and the first error
	// encountered, if any.
	ResetCompleted(ctx context.Context) (int, error)
}
