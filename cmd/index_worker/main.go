package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/repository/composite"
	"github.com/vestalumina/vls-api/internal/service"
	"github.com/vestalumina/vls-api/internal/service/queue"
	"github.com/vestalumina/vls-api/internal/worker"
	"github.com/vestalumina/vls-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	maintenance := config.DefaultMaintenanceConfig()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	appLogger.Info("OpenSearch connection established for index worker")

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for index worker")

	access := service.NewAccessService(repo.Admin(), cfg.BootstrapAdminEmail)
	actionLogService := service.NewActionLogService(repo, sqsService, access, cfg, appLogger)
	brandService := service.NewBrandService(repo, access, actionLogService, appLogger)

	// Initialize SQS worker
	sqsWorker := worker.NewSQSWorker(
		sqsService,
		[]string{sqsService.IndexQueueURL(), sqsService.StatsQueueURL()},
		repo.OpenSearch(),
		brandService,
		appLogger,
		maintenance.IndexWorkerCount,
		maintenance.IndexWorkerPollInterval,
	)

	// Start the worker
	sqsWorker.Start()
	appLogger.Info("SQS worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop the worker
	appLogger.Info("Shutting down worker...")
	sqsWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
