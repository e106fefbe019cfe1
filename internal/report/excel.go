package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

const summarySheet = "Resumo"
const allTasksSheet = "Todas as Tarefas"

// Excel builds the multi-sheet workbook: a summary sheet, an all-tasks sheet
// and one sheet per weekday that has tasks.
func Excel(tasks []*domain.Task, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(f, tasks, now); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(allTasksSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Dia", "Título", "Descrição", "Prioridade", "Status", "Data limite", "Criado em", "Atualizado em"}
	if err := f.SetSheetRow(allTasksSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, task := range tasks {
		row := append([]interface{}{task.DayOfWeek.Label()}, taskCells(task)...)
		if err := f.SetSheetRow(allTasksSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	// Day sheets only when the day has tasks.
	for _, day := range domain.WeekDays {
		var dayTasks []*domain.Task
		for _, t := range tasks {
			if t.DayOfWeek == day {
				dayTasks = append(dayTasks, t)
			}
		}
		if len(dayTasks) == 0 {
			continue
		}
		sheet := day.Short()
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		dayHeader := []interface{}{"Título", "Descrição", "Prioridade", "Status", "Data limite", "Criado em", "Atualizado em"}
		if err := f.SetSheetRow(sheet, "A1", &dayHeader); err != nil {
			return nil, err
		}
		for i, task := range dayTasks {
			row := taskCells(task)
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, tasks []*domain.Task, now time.Time) error {
	completed := 0
	for _, t := range tasks {
		if t.Status == domain.StatusDone {
			completed++
		}
	}

	lines := []string{
		"Rotina Odontológica Semanal",
		"",
		"Exportado em: " + FormatDate(now),
		"",
		"RESUMO",
		fmt.Sprintf("Total de tarefas: %d", len(tasks)),
		fmt.Sprintf("Concluídas: %d", completed),
		fmt.Sprintf("Pendentes: %d", len(tasks)-completed),
		"",
		"TAREFAS POR DIA",
	}
	for _, day := range domain.WeekDays {
		dayTotal, dayDone := 0, 0
		for _, t := range tasks {
			if t.DayOfWeek != day {
				continue
			}
			dayTotal++
			if t.Status == domain.StatusDone {
				dayDone++
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %d/%d", day.Label(), dayDone, dayTotal))
	}

	for i, line := range lines {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), line); err != nil {
			return err
		}
	}
	return nil
}

func taskCells(task *domain.Task) []interface{} {
	due := ""
	if task.DueDate != nil {
		due = domain.DueDateDisplay(*task.DueDate)
	}
	return []interface{}{
		task.Title,
		task.Description,
		task.Priority.Label(),
		task.Status.Label(),
		due,
		FormatDate(task.CreatedAt),
		FormatDate(task.UpdatedAt),
	}
}
