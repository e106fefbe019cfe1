package delivery

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// ReorderRequest carries the drag-end commit: the full new order of one
// weekday's tasks.
type ReorderRequest struct {
	DayOfWeek  string   `json:"day_of_week" binding:"required"`
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrEmptyTitle),
		errors.Is(err, usecase.ErrInvalidDay),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidDueDate),
		errors.Is(err, usecase.ErrInvalidReorder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetTasks returns one weekday's column, or the whole board without ?day.
// GET /api/tasks?day=segunda
func (h *TaskHandler) GetTasks(c *gin.Context) {
	day := domain.DayOfWeek(c.Query("day"))

	tasks, err := h.taskUsecase.ListTasks(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus is a convenience endpoint to just update status
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.ChangeStatus(c.Request.Context(), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskUsecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ReorderTasks commits the final order of a drag gesture atomically.
// POST /api/tasks/reorder
func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.taskUsecase.ReorderTasks(c.Request.Context(), domain.DayOfWeek(req.DayOfWeek), req.OrderedIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tasks reordered successfully"})
}

// GetStatistics aggregates the current or previous calendar week.
// GET /api/statistics?week=current|last
func (h *TaskHandler) GetStatistics(c *gin.Context) {
	week := c.DefaultQuery("week", "current")
	if week != "current" && week != "last" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be 'current' or 'last'"})
		return
	}

	stats, err := h.taskUsecase.Statistics(c.Request.Context(), time.Now(), week == "last")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
