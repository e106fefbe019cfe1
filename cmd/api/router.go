package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	doubtDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/doubt/delivery"
	reportDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/report/delivery"
	taskDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler, doubtHandler *doubtDelivery.DoubtHandler, reportHandler *reportDelivery.ReportHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/reorder", taskHandler.ReorderTasks)
		}

		// Statistics
		api.GET("/statistics", taskHandler.GetStatistics)

		// Knowledge base routes
		doubts := api.Group("/doubts")
		{
			doubts.GET("", doubtHandler.GetDoubts)
			doubts.POST("", doubtHandler.CreateDoubt)
			doubts.GET("/:id", doubtHandler.GetDoubtByID)
			doubts.PUT("/:id", doubtHandler.UpdateDoubt)
			doubts.DELETE("/:id", doubtHandler.DeleteDoubt)
		}

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("", reportHandler.GetReports)
			reports.GET("/export/pdf", reportHandler.ExportPDF)
			reports.GET("/export/excel", reportHandler.ExportExcel)
			reports.GET("/export/csv", reportHandler.ExportCSV)
		}
	}
}
