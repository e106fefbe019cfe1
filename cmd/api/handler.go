package api

import (
	"github.com/gin-gonic/gin"

	doubtDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/doubt/delivery"
	doubtUsecasePkg "github.com/LaryssaGabi/RotinaOdonto/internal/doubt/usecase"
	"github.com/LaryssaGabi/RotinaOdonto/internal/report"
	reportDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/report/delivery"
	taskDelivery "github.com/LaryssaGabi/RotinaOdonto/internal/task/delivery"
	taskUsecasePkg "github.com/LaryssaGabi/RotinaOdonto/internal/task/usecase"
)

type Handler struct {
	taskHandler   *taskDelivery.TaskHandler
	doubtHandler  *doubtDelivery.DoubtHandler
	reportHandler *reportDelivery.ReportHandler
}

func NewHandler(taskUc taskUsecasePkg.TaskUsecase, doubtUc doubtUsecasePkg.DoubtUsecase, generator *report.Generator) *Handler {
	return &Handler{
		taskHandler:   taskDelivery.NewTaskHandler(taskUc),
		doubtHandler:  doubtDelivery.NewDoubtHandler(doubtUc),
		reportHandler: reportDelivery.NewReportHandler(generator),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware: the board is a single-tenant app served to a browser
	// frontend on another origin.
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.taskHandler, h.doubtHandler, h.reportHandler)

	return r.Run(addr)
}
