package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/notify"
	"github.com/vestalumina/vls-api/internal/repository/composite"
	"github.com/vestalumina/vls-api/internal/service"
	"github.com/vestalumina/vls-api/internal/service/backup"
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

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	backupStore := backup.NewStore(s3Client, s3Config, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	mailer, err := notify.NewMailer(config.DefaultMailConfig(), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to configure mailer", err)
	}

	identities := identity.NewService(repo.Identity(), cfg, appLogger)
	access := service.NewAccessService(repo.Admin(), cfg.BootstrapAdminEmail)
	actionLogService := service.NewActionLogService(repo, sqsService, access, cfg, appLogger)
	brandService := service.NewBrandService(repo, access, actionLogService, appLogger)
	notifications := service.NewNotificationService(repo, mailer, appLogger)

	clk := clock.New()
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	scheduler := worker.NewScheduler(clk, appLogger.Named("scheduler"), maintenance.JobTimeout, registry)
	scheduler.Add(worker.NewBackupJob(repo.Snapshot(), backupStore, clk, appLogger), maintenance.BackupInterval)
	scheduler.Add(worker.NewBackupRetentionJob(backupStore, maintenance.BackupRetention, clk, appLogger), maintenance.BackupInterval)
	scheduler.Add(worker.NewActionLogRetentionJob(repo.ActionLog(), maintenance.ActionLogRetention, clk, appLogger), maintenance.RetentionInterval)
	scheduler.Add(worker.NewReminderJob(
		repo,
		notifications,
		maintenance.ReminderAfter,
		maintenance.ReminderSendInterval,
		maintenance.BatchSize,
		clk,
		appLogger,
	), maintenance.ReminderInterval)
	scheduler.Add(worker.NewReconcileJob(repo, identities, maintenance.ReconcileGrace, clk, appLogger), maintenance.ReconcileInterval)
	scheduler.Add(worker.NewBrandStatsJob(brandService), maintenance.BrandStatsInterval)

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", maintenance.MetricsPort),
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Metrics server stopped", err)
		}
	}()

	scheduler.Start()
	appLogger.Info("Maintenance scheduler started")

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down maintenance worker...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to stop metrics server", err)
	}

	appLogger.Info("Maintenance worker stopped")
	appLogger.Sync()
}
