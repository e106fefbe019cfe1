package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
)

// Validation errors are raised before any store call is attempted.
var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidDay      = errors.New("invalid day of week")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidReorder  = errors.New("invalid reorder request")
)

const recentCompletedLimit = 5

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	day := domain.DayOfWeek(req.DayOfWeek)
	if !day.Valid() {
		return nil, ErrInvalidDay
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
	}

	task := &domain.Task{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		DayOfWeek:   day,
		Status:      domain.StatusPending,
	}

	if req.DueDate != "" {
		due, err := domain.ParseDueDate(req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, req.DueDate)
		}
		task.DueDate = &due
	}

	// New tasks go to the end of their weekday column.
	siblings, err := u.taskRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	maxPos := -1
	for _, s := range siblings {
		if s.OrderPosition > maxPos {
			maxPos = s.OrderPosition
		}
	}
	task.OrderPosition = maxPos + 1

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	return u.taskRepo.FindByID(ctx, id)
}

func (u *taskUsecase) ListTasks(ctx context.Context, day domain.DayOfWeek) ([]*domain.Task, error) {
	if day == "" {
		return u.taskRepo.ListAll(ctx)
	}
	if !day.Valid() {
		return nil, ErrInvalidDay
	}
	return u.taskRepo.ListByDay(ctx, day)
}

func (u *taskUsecase) UpdateTask(ctx context.Context, id string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		p := domain.Priority(*updates.Priority)
		if !p.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = p
	}
	if updates.DayOfWeek != nil {
		d := domain.DayOfWeek(*updates.DayOfWeek)
		if !d.Valid() {
			return nil, ErrInvalidDay
		}
		task.DayOfWeek = d
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := domain.ParseDueDate(*updates.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, *updates.DueDate)
			}
			task.DueDate = &due
		}
	}
	if updates.Status != nil {
		s := domain.TaskStatus(*updates.Status)
		if !s.Valid() {
			return nil, ErrInvalidStatus
		}
		applyStatus(task, s)
	}

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ChangeStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	task, err := u.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStatus(task, status)
	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// applyStatus keeps the invariant: completed_at is set exactly while the task
// is done.
func applyStatus(task *domain.Task, status domain.TaskStatus) {
	task.Status = status
	if status == domain.StatusDone {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
}

func (u *taskUsecase) DeleteTask(ctx context.Context, id string) error {
	if _, err := u.taskRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return u.taskRepo.Delete(ctx, id)
}

func (u *taskUsecase) ReorderTasks(ctx context.Context, day domain.DayOfWeek, orderedIDs []string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	current, err := u.taskRepo.ListByDay(ctx, day)
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(current) {
		return fmt.Errorf("%w: expected %d task ids, got %d", ErrInvalidReorder, len(current), len(orderedIDs))
	}
	known := make(map[string]bool, len(current))
	for _, t := range current {
		known[t.ID] = true
	}

	positions := make(map[string]int, len(orderedIDs))
	for idx, id := range orderedIDs {
		if !known[id] {
			return fmt.Errorf("%w: task %s does not belong to %s", ErrInvalidReorder, id, day)
		}
		if _, dup := positions[id]; dup {
			return fmt.Errorf("%w: duplicate task id %s", ErrInvalidReorder, id)
		}
		positions[id] = idx
	}

	return u.taskRepo.UpdateOrderPositions(ctx, positions)
}

func (u *taskUsecase) Statistics(ctx context.Context, now time.Time, lastWeek bool) (*StatisticsResponse, error) {
	start, end := WeekWindow(now, 0)
	if lastWeek {
		start, end = WeekWindow(now, 1)
	}

	tasks, err := u.taskRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	recent, err := u.taskRepo.RecentCompleted(ctx, recentCompletedLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*domain.Task{}
	}

	weekly := ComputeWeeklyStats(tasks)
	return &StatisticsResponse{
		Weekly:          weekly,
		CompletionRate:  CompletionRate(weekly),
		Daily:           ComputeDailyBreakdown(tasks),
		Priorities:      ComputePriorityBreakdown(tasks),
		RecentCompleted: recent,
	}, nil
}
