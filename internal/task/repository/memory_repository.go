package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// MemoryTaskRepository is an in-memory TaskRepository used by tests and local
// runs without Firestore credentials. It honors the same ordering and
// atomicity contracts as the Firestore implementation.
type MemoryTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]*domain.Task

	// FailWith, when set, makes every mutation return this error without
	// touching stored state. Tests use it to simulate store I/O failure.
	FailWith error
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]*domain.Task)}
}

func clone(t *domain.Task) *domain.Task {
	c := *t
	return &c
}

func (r *MemoryTaskRepository) snapshot(keep func(*domain.Task) bool) []*domain.Task {
	var out []*domain.Task
	for _, t := range r.tasks {
		if keep == nil || keep(t) {
			out = append(out, clone(t))
		}
	}
	return out
}

func (r *MemoryTaskRepository) ListByDay(_ context.Context, day domain.DayOfWeek) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.snapshot(func(t *domain.Task) bool { return t.DayOfWeek == day })
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].OrderPosition < tasks[j].OrderPosition })
	return tasks, nil
}

func (r *MemoryTaskRepository) ListAll(_ context.Context) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.snapshot(nil)
	dayIndex := make(map[domain.DayOfWeek]int, len(domain.WeekDays))
	for i, d := range domain.WeekDays {
		dayIndex[d] = i
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].DayOfWeek != tasks[j].DayOfWeek {
			return dayIndex[tasks[i].DayOfWeek] < dayIndex[tasks[j].DayOfWeek]
		}
		return tasks[i].OrderPosition < tasks[j].OrderPosition
	})
	return tasks, nil
}

func (r *MemoryTaskRepository) ListCreatedBetween(_ context.Context, start, end time.Time) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.snapshot(func(t *domain.Task) bool {
		return !t.CreatedAt.Before(start) && t.CreatedAt.Before(end)
	})
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r *MemoryTaskRepository) RecentCompleted(_ context.Context, limit int) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.snapshot(func(t *domain.Task) bool { return t.Status == domain.StatusDone && t.CompletedAt != nil })
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CompletedAt.After(*tasks[j].CompletedAt) })
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

func (r *MemoryTaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(task), nil
}

func (r *MemoryTaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.tasks[task.ID] = clone(task)
	return nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	if _, ok := r.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = clone(task)
	return nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	delete(r.tasks, id)
	return nil
}

func (r *MemoryTaskRepository) UpdateOrderPositions(_ context.Context, positions map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	// Validate the whole batch before applying anything: the commit is
	// all-or-nothing.
	for id := range positions {
		if _, ok := r.tasks[id]; !ok {
			return ErrNotFound
		}
	}
	now := time.Now()
	for id, pos := range positions {
		r.tasks[id].OrderPosition = pos
		r.tasks[id].UpdatedAt = now
	}
	return nil
}

func (r *MemoryTaskRepository) ResetCompleted(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	now := time.Now()
	reset := 0
	for _, t := range r.tasks {
		if t.Status == domain.StatusDone {
			t.Status = domain.StatusPending
			t.CompletedAt = nil
			t.UpdatedAt = now
			reset++
		}
	}
	return reset, nil
}
