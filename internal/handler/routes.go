package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	feeService service.FeeService,
	paymentService service.PaymentService,
	studentService service.StudentService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	feeHandler := NewFeeHandler(feeService, logger)
	paymentHandler := NewPaymentHandler(paymentService, logger)
	studentHandler := NewStudentHandler(studentService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Fee routes
		fees := v1.Group("/fees")
		{
			fees.GET("", feeHandler.ListFees)
			fees.GET("/my/:student_id", feeHandler.GetMyFees)
			fees.GET("/summary", feeHandler.GetFeeSummary)
			fees.GET("/calendar", feeHandler.GetFeeCalendar)
			fees.GET("/export", feeHandler.ExportFees)
			fees.POST("/remind", feeHandler.BulkRemind)
		}

		// Payment routes
		payments := v1.Group("/payments")
		{
			payments.POST("/order", paymentHandler.CreateOrder)
			payments.POST("/multi-order", paymentHandler.CreateMultiOrder)
			payments.POST("/verify", paymentHandler.VerifyPayment)
			payments.POST("/verify-multi", paymentHandler.VerifyMultiPayment)
		}

		// Student routes
		students := v1.Group("/students")
		{
			students.GET("", studentHandler.SearchStudents)
			students.GET("/:id", studentHandler.GetStudent)
			students.GET("/:id/wards", studentHandler.GetWards)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetDashboardStats)
			dashboard.GET("/payments", dashboardHandler.GetRecentPayments)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Tutorix Fee Service",
	})
}
