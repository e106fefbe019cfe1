package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// A4 portrait in points, matching the original layout.
const (
	pageHeight   = 841.89
	marginLeft   = 50.0
	marginTop    = 40.0
	rowHeight    = 20.0
	lowWaterMark = pageHeight - 80
)

var columnWidths = [4]float64{30, 120, 250, 80}

// PDF renders the printable weekly-routine document: title, export date,
// summary block, then one table per weekday. The timestamp appears only in
// the header decoration.
func PDF(tasks []*domain.Task, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Rotina Semanal"), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetXY(marginLeft, pageHeight-40)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// Header
	pdf.SetXY(marginLeft, marginTop)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(0, 24, tr("Rotina Semanal"), "", 1, "L", false, 0, "")

	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 16, tr("Exportado em: "+FormatDate(now)), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// Summary
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Status == domain.StatusDone {
			completed++
		}
	}
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(0, 18, "Resumo:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Total de tarefas: %d", total),
		fmt.Sprintf("Concluídas: %d", completed),
		fmt.Sprintf("Pendentes: %d", total-completed),
	} {
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 15, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(15)

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

		if pdf.GetY() > lowWaterMark-2*rowHeight {
			pdf.AddPage()
			pdf.SetY(marginTop)
		}

		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(26, 26, 26)
		pdf.CellFormat(0, 18, tr(day.Label()), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		drawTableHeader(pdf, tr)

		for i, task := range dayTasks {
			if pdf.GetY() > lowWaterMark {
				pdf.AddPage()
				pdf.SetY(marginTop)
				drawTableHeader(pdf, tr)
			}
			drawTaskRow(pdf, tr, task, i%2 == 0)
		}
		pdf.Ln(15)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	headers := [4]string{"Status", "Título", "Descrição", "Situação"}
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(26, 26, 26)
	pdf.SetFillColor(179, 230, 255)
	for i, h := range headers {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(h), "", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)
}

func drawTaskRow(pdf *fpdf.Fpdf, tr func(string) string, task *domain.Task, shaded bool) {
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(26, 26, 26)
	pdf.SetFillColor(245, 245, 245)

	mark := "-"
	if task.Status == domain.StatusDone {
		mark = "X"
	}
	description := task.Description
	if description == "" {
		description = "-"
	}

	cells := [4]string{mark, task.Title, description, task.Status.Label()}
	aligns := [4]string{"C", "L", "L", "L"}
	for i, cell := range cells {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(truncate(cell, maxChars(i))), "", 0, aligns[i], shaded, 0, "")
	}
	pdf.Ln(rowHeight)
}

// maxChars approximates how many 10pt characters fit each column.
func maxChars(column int) int {
	switch column {
	case 1:
		return 24
	case 2:
		return 52
	default:
		return 16
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
