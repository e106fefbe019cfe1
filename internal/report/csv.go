package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// CSV flattens the task collection into a comma-separated export with the
// same columns as the all-tasks spreadsheet sheet.
func CSV(tasks []*domain.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Dia", "Título", "Descrição", "Prioridade", "Status", "Data limite", "Criado em", "Atualizado em"}); err != nil {
		return nil, err
	}
	for _, task := range tasks {
		due := ""
		if task.DueDate != nil {
			due = domain.DueDateDisplay(*task.DueDate)
		}
		record := []string{
			task.DayOfWeek.Label(),
			task.Title,
			task.Description,
			task.Priority.Label(),
			task.Status.Label(),
			due,
			FormatDate(task.CreatedAt),
			FormatDate(task.UpdatedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
