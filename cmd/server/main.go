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

	"github.com/TrendySloth1001/tutorix-sub002/docs"
	"github.com/TrendySloth1001/tutorix-sub002/internal/config"
	"github.com/TrendySloth1001/tutorix-sub002/internal/database"
	"github.com/TrendySloth1001/tutorix-sub002/internal/handler"
	"github.com/TrendySloth1001/tutorix-sub002/internal/middleware"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/internal/scheduler"
	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// @title Tutorix Fee Service API
// @version 1.0
// @description RESTful API for coaching center fee management and payments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Tutorix Fee Service API"
	docs.SwaggerInfo.Description = "RESTful API for coaching center fee management and payments"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Tutorix Fee Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	feeRepo := repository.NewFeeRepository(db.DB)
	studentRepo := repository.NewStudentRepository(db.DB)
	paymentRepo := repository.NewPaymentRepository(db.DB)
	centerRepo := repository.NewCenterRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	// Initialize services
	emailService := service.NewEmailService(cfg.Mail, appLogger)
	razorpayService := service.NewRazorpayService(cfg.Razorpay, appLogger)
	feeService := service.NewFeeService(feeRepo, studentRepo, centerRepo, emailService, appLogger)
	paymentService := service.NewPaymentService(feeRepo, studentRepo, paymentRepo, centerRepo, razorpayService, db.DB, appLogger)
	studentService := service.NewStudentService(studentRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger)

	// Start the overdue sweep scheduler
	feeScheduler := scheduler.NewFeeScheduler(feeRepo, schedulerLogRepo, appLogger, cfg.Scheduler.OverdueCronExpression)
	if cfg.Scheduler.Enabled {
		if err := feeScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start fee scheduler")
		}
	} else {
		appLogger.Info("Fee scheduler is disabled")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, feeService, paymentService, studentService, dashboardService, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before draining requests
	if cfg.Scheduler.Enabled {
		feeScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
