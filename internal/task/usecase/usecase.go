package usecase

import (
	"context"
	"time"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask validates the fields and stores a new pending task at the end
	// of its weekday column.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a single task.
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)

	// ListTasks returns tasks for one weekday (ordered by position) or, when
	// day is empty, the full board in canonical order.
	ListTasks(ctx context.Context, day domain.DayOfWeek) ([]*domain.Task, error)

	// UpdateTask merges the supplied fields into an existing task.
	UpdateTask(ctx context.Context, id string, updates TaskUpdateRequest) (*domain.Task, error)

	// ChangeStatus moves a task between statuses, stamping or clearing
	// completed_at.
	ChangeStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id string) error

	// ReorderTasks commits a new manual ordering for one weekday. orderedIDs
	// must be a permutation of that day's task IDs; positions become the slice
	// indexes.
	ReorderTasks(ctx context.Context, day domain.DayOfWeek, orderedIDs []string) error

	// Statistics aggregates the week window containing now (or the previous
	// one when lastWeek is set).
	Statistics(ctx context.Context, now time.Time, lastWeek bool) (*StatisticsResponse, error)
}

// CreateTaskRequest carries the form fields for a new task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	DayOfWeek   string `json:"day_of_week"`
}

// TaskUpdateRequest represents the fields that can be updated. Nil pointers
// leave the stored value untouched; an empty due date clears it.
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DayOfWeek   *string `json:"day_of_week,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// StatisticsResponse is the payload of the statistics endpoint.
type StatisticsResponse struct {
	Weekly          WeeklyStats    `json:"weekly"`
	CompletionRate  int            `json:"completion_rate"`
	Daily           []DailyStat    `json:"daily"`
	Priorities      []PriorityStat `json:"priorities"`
	RecentCompleted []*domain.Task `json:"recent_completed"`
}
