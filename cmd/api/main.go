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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vestalumina/vls-api/docs"
	"github.com/vestalumina/vls-api/internal/api"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/middleware"
	"github.com/vestalumina/vls-api/internal/notify"
	"github.com/vestalumina/vls-api/internal/repository/composite"
	"github.com/vestalumina/vls-api/internal/repository/postgres"
	"github.com/vestalumina/vls-api/internal/service"
	"github.com/vestalumina/vls-api/internal/service/pubsub"
	"github.com/vestalumina/vls-api/internal/service/queue"
	"github.com/vestalumina/vls-api/internal/translate"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// @title           Vesta Lumina API
// @version         1.0
// @description     Owner, device and admin backend for Vesta Lumina rentals.

// @host      localhost:10000
// @BasePath  /api/v2

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
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

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.Migrate(dbConnections.Writer, cfg.DefaultBrandID); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

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

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize services
	identities := identity.NewService(repo.Identity(), cfg, appLogger)
	access := service.NewAccessService(repo.Admin(), cfg.BootstrapAdminEmail)
	actionLogService := service.NewActionLogService(repo, sqsService, access, cfg, appLogger)
	actionLogService.SetLivePublisher(redisPubSub)
	notifications := service.NewNotificationService(repo, mailer, appLogger)
	maintenance := config.DefaultMaintenanceConfig()
	translationConfig := config.DefaultTranslationConfig()
	translator, err := translate.NewClient(context.Background(), translationConfig)
	if err != nil {
		appLogger.Fatal("Failed to configure translation client", err)
	}

	services := api.Services{
		Auth:        identities,
		Admin:       service.NewAdminService(repo, access, actionLogService, appLogger),
		Tenant:      service.NewTenantService(repo, identities, access, actionLogService, sqsService, notifications, cfg, appLogger),
		Brand:       service.NewBrandService(repo, access, actionLogService, appLogger),
		Unit:        service.NewUnitService(repo),
		Device:      service.NewDeviceService(repo, identities, access, actionLogService, maintenance.BatchSize, appLogger),
		ActionLog:   actionLogService,
		Translation: service.NewTranslationService(translator, access, translationConfig, appLogger),
		LiveFeed:    redisPubSub,
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(identities)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)
	metricsMiddleware := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
	versionConfig := config.DefaultAPIVersionConfig()

	// Initialize server
	server := api.NewServer(
		services,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		middleware.NewVersionMiddleware(versionConfig),
		cfg.GlobalRateLimit,
		cfg.MaxRequestBytes,
		appLogger,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(appLogger))
	router.Use(metricsMiddleware.Handler())

	// Swagger documentation endpoint
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/" + versionConfig.Current
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes, once per supported version
	for _, version := range versionConfig.Supported {
		server.SetupRoutes(router.Group("/api/" + version))
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
