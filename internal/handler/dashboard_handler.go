package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardStats handles GET /api/v1/dashboard/stats
// @Summary Get dashboard statistics
// @Description Get collection totals and per-status fee counts, with optional month and year filters on the due date
// @Tags dashboard
// @Accept json
// @Produce json
// @Param month query int false "Filter by due month (1-12)"
// @Param year query int false "Filter by due year"
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatsResponse} "Dashboard statistics retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	var month *int
	if m := c.Query("month"); m != "" {
		value, err := strconv.Atoi(m)
		if err != nil {
			h.logger.WithError(err).WithField("month", m).Error("Invalid month parameter format")
			utils.BadRequestResponse(c, "Invalid month parameter format", err)
			return
		}
		month = &value
	}

	var year *int
	if y := c.Query("year"); y != "" {
		value, err := strconv.Atoi(y)
		if err != nil {
			h.logger.WithError(err).WithField("year", y).Error("Invalid year parameter format")
			utils.BadRequestResponse(c, "Invalid year parameter format", err)
			return
		}
		year = &value
	}

	stats, err := h.dashboardService.GetDashboardStats(month, year)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard statistics")
		utils.InternalServerErrorResponse(c, "Failed to retrieve dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", stats)
}

// GetRecentPayments handles GET /api/v1/dashboard/payments
// @Summary Get recent payments
// @Description Get the latest recorded payments, newest first, with pagination
// @Tags dashboard
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]response.RecentPaymentItem} "Recent payments retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/payments [get]
func (h *DashboardHandler) GetRecentPayments(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	payments, total, err := h.dashboardService.GetRecentPayments(page, limit)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"page":  page,
			"limit": limit,
		}).Error("Failed to get recent payments")
		utils.InternalServerErrorResponse(c, "Failed to retrieve recent payments", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Recent payments retrieved successfully", payments, page, limit, total)
}
