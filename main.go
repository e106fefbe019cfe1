package main

import (
	"context"
	"log"

	api "github.com/LaryssaGabi/RotinaOdonto/cmd/api"
	doubtRepo "github.com/LaryssaGabi/RotinaOdonto/internal/doubt/repository"
	doubtUsecase "github.com/LaryssaGabi/RotinaOdonto/internal/doubt/usecase"
	"github.com/LaryssaGabi/RotinaOdonto/internal/report"
	taskRepo "github.com/LaryssaGabi/RotinaOdonto/internal/task/repository"
	"github.com/LaryssaGabi/RotinaOdonto/internal/task/scheduler"
	taskUsecase "github.com/LaryssaGabi/RotinaOdonto/internal/task/usecase"
	"github.com/LaryssaGabi/RotinaOdonto/pkg/config"
	"github.com/LaryssaGabi/RotinaOdonto/pkg/firestore"
	"github.com/LaryssaGabi/RotinaOdonto/pkg/markers"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx := context.Background()

	// Initialize Firestore (explicit handle, injected into the repositories)
	client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to connect to Firestore:", err)
	}
	defer client.Close()

	// Initialize repositories (dependency injection)
	taskRepository := taskRepo.NewFirestoreTaskRepository(client, cfg.TasksCollection)
	doubtRepository := doubtRepo.NewFirestoreDoubtRepository(client, cfg.DoubtsCollection)

	// Initialize use cases
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)
	doubtUsecaseInstance := doubtUsecase.NewDoubtUsecase(doubtRepository)
	reportGenerator := report.NewGenerator(taskRepository)

	// Weekly reset: local durable marker store + recurring trigger check
	markerStore, err := markers.NewStore(cfg.MarkerDBPath)
	if err != nil {
		log.Fatal("Failed to open marker store:", err)
	}
	resetScheduler, err := scheduler.NewResetScheduler(
		taskRepository,
		markerStore,
		cfg.ResetWeekday,
		cfg.ResetTime,
		cfg.Timezone,
		cfg.ResetCheckInterval,
	)
	if err != nil {
		log.Fatal("Failed to build reset scheduler:", err)
	}
	if err := resetScheduler.Start(); err != nil {
		log.Fatal("Failed to start reset scheduler:", err)
	}
	defer resetScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(taskUsecaseInstance, doubtUsecaseInstance, reportGenerator)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
