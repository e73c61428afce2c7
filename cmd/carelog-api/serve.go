package main

import (
	"fmt"

	"github.com/carelog/backend/internal/config"
	"github.com/carelog/backend/internal/handlers"
	"github.com/carelog/backend/internal/logger"
	"github.com/carelog/backend/internal/middleware"
	"github.com/carelog/backend/internal/repository"
	"github.com/carelog/backend/internal/service"
	"github.com/carelog/backend/pkg/healthapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))
	log := logger.Default()

	log.Info("starting carelog API server",
		logger.String("env", cfg.Server.Env),
		logger.String("health_api_url", cfg.HealthAPI.URL),
	)

	// Initialize health-records API client
	healthClient := healthapi.NewClient(cfg.HealthAPI.URL, cfg.HealthAPI.ServiceKey)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(healthClient)
	logRepo := repository.NewDailyLogRepository(healthClient)
	summaryRepo := repository.NewSummaryRepository(healthClient)

	// Initialize services
	patientService := service.NewPatientService(patientRepo)
	insightsService := service.NewInsightsService(logRepo, patientRepo)
	summaryService := service.NewSummaryService(logRepo, patientRepo, summaryRepo)

	// Initialize handlers
	patientsHandler := handlers.NewPatientsHandler(patientService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", middleware.MetricsHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(healthClient))
	{
		v1.GET("/patients", patientsHandler.ListPatients)
		v1.GET("/patients/:id", patientsHandler.GetPatient)

		// Insight routes
		v1.GET("/patients/:id/insights/metrics", insightsHandler.GetMetrics)
		v1.GET("/patients/:id/insights/metrics/:key", insightsHandler.GetMetricDetail)
		v1.GET("/patients/:id/insights/observations", insightsHandler.GetObservations)
		v1.GET("/patients/:id/insights/events", insightsHandler.GetEvents)

		// Summary generation triggers expensive upstream work
		v1.POST("/patients/:id/summary", middleware.RateLimitSummary(), summaryHandler.GenerateSummary)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
