package report

import (
	"context"
	"fmt"
	"time"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/usecase"
)

// WeekGroup is one calendar week of tasks for the reports view.
type WeekGroup struct {
	WeekLabel string         `json:"week_label"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Tasks     []*domain.Task `json:"tasks"`
}

// Generator loads task windows for reports and exports.
type Generator struct {
	taskRepo repository.TaskRepository
}

func NewGenerator(taskRepo repository.TaskRepository) *Generator {
	return &Generator{taskRepo: taskRepo}
}

// WeekGroups returns the last weeks calendar weeks (current first), each with
// the tasks created inside its window.
func (g *Generator) WeekGroups(ctx context.Context, now time.Time, weeks int) ([]WeekGroup, error) {
	if weeks <= 0 {
		weeks = 4
	}
	groups := make([]WeekGroup, 0, weeks)
	for i := 0; i < weeks; i++ {
		start, end := usecase.WeekWindow(now, i)
		tasks, err := g.taskRepo.ListCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		if tasks == nil {
			tasks = []*domain.Task{}
		}
		groups = append(groups, WeekGroup{
			WeekLabel: WeekLabel(start, end),
			StartDate: start,
			EndDate:   end,
			Tasks:     tasks,
		})
	}
	return groups, nil
}

// TasksForExport returns the export input: the whole board, or only the last
// weeks calendar weeks when weeks > 0.
func (g *Generator) TasksForExport(ctx context.Context, now time.Time, weeks int) ([]*domain.Task, error) {
	if weeks <= 0 {
		return g.taskRepo.ListAll(ctx)
	}
	start, _ := usecase.WeekWindow(now, weeks-1)
	_, end := usecase.WeekWindow(now, 0)
	return g.taskRepo.ListCreatedBetween(ctx, start, end)
}

var monthShorts = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// WeekLabel formats a window like "02 jan - 09 jan".
func WeekLabel(start, end time.Time) string {
	return fmt.Sprintf("%02d %s - %02d %s",
		start.Day(), monthShorts[start.Month()-1],
		end.Day(), monthShorts[end.Month()-1])
}

// FormatDate renders timestamps the way the exports display them.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FileName builds the date-stamped download name for an export.
func FileName(ext string, now time.Time) string {
	return fmt.Sprintf("rotina-odontologica-%s.%s", now.Format("02-01-2006"), ext)
}
