package usecase

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

func newFixture() (TaskUsecase, *repository.MemoryTaskRepository) {
	repo := repository.NewMemoryTaskRepository()
	return NewTaskUsecase(repo), repo
}

func mustCreate(t *testing.T, uc TaskUsecase, title string, day domain.DayOfWeek) *domain.Task {
	t.Helper()
	task, err := uc.CreateTask(context.Background(), CreateTaskRequest{
		Title:     title,
		DayOfWeek: string(day),
	})
	require.NoError(t, err)
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	uc, _ := newFixture()

	task, err := uc.CreateTask(context.Background(), CreateTaskRequest{
		Title:     "Esterilizar instrumentos",
		DayOfWeek: "segunda",
		DueDate:   "2025-03-10",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, 0, task.OrderPosition)
	assert.Nil(t, task.CompletedAt)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-03-10", domain.DueDateDisplay(*task.DueDate))
	assert.False(t, task.CreatedAt.IsZero())
	assert.False(t, task.UpdatedAt.IsZero())
}

func TestCreateTaskValidation(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	_, err := uc.CreateTask(ctx, CreateTaskRequest{Title: "   ", DayOfWeek: "segunda"})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = uc.CreateTask(ctx, CreateTaskRequest{Title: "x", DayOfWeek: "feriado"})
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = uc.CreateTask(ctx, CreateTaskRequest{Title: "x", DayOfWeek: "segunda", Priority: "altissima"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestOrderPositionsIncreasePerDay(t *testing.T) {
	uc, _ := newFixture()

	a := mustCreate(t, uc, "A", domain.Monday)
	b := mustCreate(t, uc, "B", domain.Monday)
	c := mustCreate(t, uc, "C", domain.Monday)
	other := mustCreate(t, uc, "Outro dia", domain.Friday)

	assert.Equal(t, 0, a.OrderPosition)
	assert.Equal(t, 1, b.OrderPosition)
	assert.Equal(t, 2, c.OrderPosition)
	// Each weekday is its own partition.
	assert.Equal(t, 0, other.OrderPosition)
}

func TestOrderPositionAfterDeleteKeepsGap(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	mustCreate(t, uc, "A", domain.Monday)
	b := mustCreate(t, uc, "B", domain.Monday)
	mustCreate(t, uc, "C", domain.Monday)

	require.NoError(t, uc.DeleteTask(ctx, b.ID))

	// Max position is still 2; the next task lands after it.
	d := mustCreate(t, uc, "D", domain.Monday)
	assert.Equal(t, 3, d.OrderPosition)

	tasks, err := uc.ListTasks(ctx, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, titles(tasks))
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestCompletedAtTracksStatus(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()
	task := mustCreate(t, uc, "Revisar agenda", domain.Tuesday)

	done, err := uc.ChangeStatus(ctx, task.ID, domain.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	back, err := uc.ChangeStatus(ctx, task.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, back.CompletedAt)

	_, err = uc.ChangeStatus(ctx, task.ID, "feita")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTaskMergesFields(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()
	task := mustCreate(t, uc, "Original", domain.Monday)

	newTitle := "Atualizado"
	newStatus := string(domain.StatusDone)
	updated, err := uc.UpdateTask(ctx, task.ID, TaskUpdateRequest{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, "Atualizado", updated.Title)
	assert.Equal(t, domain.StatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	// Untouched fields keep their values.
	assert.Equal(t, domain.Monday, updated.DayOfWeek)

	// Clearing the due date.
	due := "2025-04-01"
	updated, err = uc.UpdateTask(ctx, task.ID, TaskUpdateRequest{DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)

	empty := ""
	updated, err = uc.UpdateTask(ctx, task.ID, TaskUpdateRequest{DueDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestUpdateUnknownTask(t *testing.T) {
	uc, _ := newFixture()
	newTitle := "x"
	_, err := uc.UpdateTask(context.Background(), "missing", TaskUpdateRequest{Title: &newTitle})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReorderCommitsDragEndOrder(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	a := mustCreate(t, uc, "A", domain.Monday)
	b := mustCreate(t, uc, "B", domain.Monday)
	c := mustCreate(t, uc, "C", domain.Monday)

	tasks, err := uc.ListTasks(ctx, domain.Monday)
	require.NoError(t, err)

	session := NewDragSession(tasks)
	session.Start(c.ID)
	session.Over(a.ID)
	final := session.End()
	require.NotNil(t, final)

	require.NoError(t, uc.ReorderTasks(ctx, domain.Monday, OrderedIDs(final)))

	persisted, err := uc.ListTasks(ctx, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, OrderedIDs(persisted))
	for i, task := range persisted {
		assert.Equal(t, i, task.OrderPosition)
	}
}

func TestReorderRejectsBadPermutations(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	a := mustCreate(t, uc, "A", domain.Monday)
	b := mustCreate(t, uc, "B", domain.Monday)

	assert.Error(t, uc.ReorderTasks(ctx, domain.Monday, []string{a.ID}))
	assert.Error(t, uc.ReorderTasks(ctx, domain.Monday, []string{a.ID, "intruso"}))
	assert.Error(t, uc.ReorderTasks(ctx, domain.Monday, []string{a.ID, a.ID}))
	assert.Error(t, uc.ReorderTasks(ctx, "feriado", []string{a.ID, b.ID}))
}

func TestReorderCommitIsAtomic(t *testing.T) {
	uc, repo := newFixture()
	ctx := context.Background()

	a := mustCreate(t, uc, "A", domain.Monday)
	b := mustCreate(t, uc, "B", domain.Monday)

	boom := errors.New("store unavailable")
	repo.FailWith = boom
	err := uc.ReorderTasks(ctx, domain.Monday, []string{b.ID, a.ID})
	assert.ErrorIs(t, err, boom)
	repo.FailWith = nil

	// The failed commit must not leave a mixed ordering.
	persisted, err := uc.ListTasks(ctx, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, OrderedIDs(persisted))
}

func TestStatisticsAggregatesWeekWindow(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	task := mustCreate(t, uc, "Concluída", domain.Monday)
	_, err := uc.ChangeStatus(ctx, task.ID, domain.StatusDone)
	require.NoError(t, err)
	mustCreate(t, uc, "Pendente", domain.Friday)

	stats, err := uc.Statistics(ctx, time.Now(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Weekly.Total)
	assert.Equal(t, 1, stats.Weekly.Completed)
	assert.Equal(t, 50, stats.CompletionRate)
	require.Len(t, stats.Daily, 7)
	require.Len(t, stats.Priorities, 4)
	require.Len(t, stats.RecentCompleted, 1)
	assert.Equal(t, task.ID, stats.RecentCompleted[0].ID)
}
