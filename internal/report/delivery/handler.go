package delivery

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaGabi/RotinaOdonto/internal/report"
)

// ReportHandler serves week-grouped report data and the export downloads.
type ReportHandler struct {
	generator *report.Generator
}

func NewReportHandler(generator *report.Generator) *ReportHandler {
	return &ReportHandler{generator: generator}
}

func weeksParam(c *gin.Context) int {
	weeks, err := strconv.Atoi(c.DefaultQuery("weeks", "0"))
	if err != nil || weeks < 0 {
		return 0
	}
	return weeks
}

// GetReports returns the last N calendar weeks of tasks.
// GET /api/reports?weeks=4
func (h *ReportHandler) GetReports(c *gin.Context) {
	weeks := weeksParam(c)
	if weeks == 0 {
		weeks = 4
	}

	groups, err := h.generator.WeekGroups(c.Request.Context(), time.Now(), weeks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": groups})
}

// ExportPDF streams the printable document.
// GET /api/reports/export/pdf?weeks=N
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	now := time.Now()
	tasks, err := h.generator.TasksForExport(c.Request.Context(), now, weeksParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := report.PDF(tasks, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveDownload(c, report.FileName("pdf", now), "application/pdf", data)
}

// ExportExcel streams the multi-sheet workbook.
// GET /api/reports/export/excel?weeks=N
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	now := time.Now()
	tasks, err := h.generator.TasksForExport(c.Request.Context(), now, weeksParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := report.Excel(tasks, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveDownload(c, report.FileName("xlsx", now),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportCSV streams the flat comma-separated export.
// GET /api/reports/export/csv?weeks=N
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	now := time.Now()
	tasks, err := h.generator.TasksForExport(c.Request.Context(), now, weeksParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := report.CSV(tasks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveDownload(c, report.FileName("csv", now), "text/csv", data)
}

func serveDownload(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
