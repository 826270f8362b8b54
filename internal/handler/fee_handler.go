package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

// BulkRemindRequest represents the request for bulk fee reminders
type BulkRemindRequest struct {
	FeeIDs []uint `json:"fee_ids,omitempty"` // Empty means all overdue fees
}

// FeeHandler handles fee-related HTTP requests
type FeeHandler struct {
	feeService service.FeeService
	logger     *logger.Logger
}

// NewFeeHandler creates a new FeeHandler instance
func NewFeeHandler(feeService service.FeeService, logger *logger.Logger) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
		logger:     logger,
	}
}

// GetMyFees retrieves the fee records visible to a student or guardian
// @Summary Get my fees
// @Description Get fee records for a student, including fees of linked wards, sorted most urgent first, with a summary
// @Tags fees
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} utils.APIResponse{data=response.MyFeesResponse} "Fee records retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid student ID"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees/my/{student_id} [get]
func (h *FeeHandler) GetMyFees(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 32)
	if err != nil {
		h.logger.WithError(err).Error("Invalid student ID param")
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	myFees, err := h.feeService.GetMyFees(uint(studentID))
	if err != nil {
		h.logger.WithError(err).WithField("student_id", studentID).Error("Failed to get fees")
		utils.InternalServerErrorResponse(c, "Failed to retrieve fees", err)
		return
	}

	utils.SuccessResponse(c, "Fees retrieved successfully", myFees)
}

// GetFeeSummary retrieves aggregate fee totals
// @Summary Get fee summary
// @Description Get aggregate due, paid and overdue totals, optionally narrowed to one student
// @Tags fees
// @Accept json
// @Produce json
// @Param student_id query int false "Filter by student ID"
// @Success 200 {object} utils.APIResponse{data=response.FeeSummaryResponse} "Fee summary retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees/summary [get]
func (h *FeeHandler) GetFeeSummary(c *gin.Context) {
	var studentID *uint
	if s := c.Query("student_id"); s != "" {
		value, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			h.logger.WithError(err).WithField("student_id", s).Error("Invalid student ID parameter")
			utils.BadRequestResponse(c, "Invalid student ID parameter", err)
			return
		}
		id := uint(value)
		studentID = &id
	}

	summary, err := h.feeService.GetFeeSummary(studentID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get fee summary")
		utils.InternalServerErrorResponse(c, "Failed to retrieve fee summary", err)
		return
	}

	utils.SuccessResponse(c, "Fee summary retrieved successfully", summary)
}

// GetFeeCalendar retrieves per-day fee statistics for one month
// @Summary Get fee calendar stats
// @Description Get per-day due and collected amounts for a calendar month
// @Tags fees
// @Accept json
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} utils.APIResponse{data=response.CalendarStatsResponse} "Calendar stats retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees/calendar [get]
func (h *FeeHandler) GetFeeCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.logger.WithError(err).WithField("year", c.Query("year")).Error("Invalid year parameter")
		utils.BadRequestResponse(c, "Invalid year parameter", err)
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.WithField("month", c.Query("month")).Error("Invalid month parameter")
		utils.BadRequestResponse(c, "Month must be between 1 and 12", err)
		return
	}

	stats, err := h.feeService.GetFeeCalendarStats(year, month)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"year":  year,
			"month": month,
		}).Error("Failed to get calendar stats")
		utils.InternalServerErrorResponse(c, "Failed to retrieve calendar stats", err)
		return
	}

	utils.SuccessResponse(c, "Calendar stats retrieved successfully", stats)
}

// BulkRemind sends payment reminders for fee records
// @Summary Send bulk fee reminders
// @Description Send payment reminder emails for the given fee IDs, or for all overdue fees if fee_ids is empty
// @Tags fees
// @Accept json
// @Produce json
// @Param request body BulkRemindRequest true "Bulk remind request"
// @Success 200 {object} utils.APIResponse{data=response.RemindResultResponse} "Reminder result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees/remind [post]
func (h *FeeHandler) BulkRemind(c *gin.Context) {
	var req BulkRemindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.feeService.BulkRemind(req.FeeIDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to send reminders")
		utils.InternalServerErrorResponse(c, "Failed to send reminders", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"requested_count": result.RequestedCount,
		"sent_count":      result.SentCount,
		"failed_count":    result.FailedCount,
	}).Info("Bulk reminders processed")

	utils.SuccessResponse(c, "Reminders processed successfully", result)
}

// ListFees retrieves the fee ledger with filters and pagination
// @Summary List fees
// @Description Get fee records with optional status, month and year filters and pagination
// @Tags fees
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (PENDING, OVERDUE, PARTIALLY_PAID, PAID, WAIVED)"
// @Param month query int false "Filter by due month (1-12)"
// @Param year query int false "Filter by due year"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]response.FeeListItem} "Fees retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees [get]
func (h *FeeHandler) ListFees(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	var month *int
	if m := c.Query("month"); m != "" {
		value, err := strconv.Atoi(m)
		if err != nil {
			h.logger.WithError(err).WithField("month", m).Error("Invalid month parameter")
			utils.BadRequestResponse(c, "Invalid month parameter", err)
			return
		}
		month = &value
	}

	var year *int
	if y := c.Query("year"); y != "" {
		value, err := strconv.Atoi(y)
		if err != nil {
			h.logger.WithError(err).WithField("year", y).Error("Invalid year parameter")
			utils.BadRequestResponse(c, "Invalid year parameter", err)
			return
		}
		year = &value
	}

	fees, total, err := h.feeService.ListFees(status, month, year, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list fees")
		utils.InternalServerErrorResponse(c, "Failed to retrieve fees", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Fees retrieved successfully", fees, page, limit, total)
}

// ExportFees downloads the fee ledger as an Excel file
// @Summary Export fees to Excel
// @Description Download fee records as an xlsx file with optional status, month and year filters
// @Tags fees
// @Accept json
// @Produce octet-stream
// @Param status query string false "Filter by status"
// @Param month query int false "Filter by due month (1-12)"
// @Param year query int false "Filter by due year"
// @Success 200 {file} file "The Excel file"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/fees/export [get]
func (h *FeeHandler) ExportFees(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	var month *int
	if m := c.Query("month"); m != "" {
		value, err := strconv.Atoi(m)
		if err != nil {
			h.logger.WithError(err).WithField("month", m).Error("Invalid month parameter")
			utils.BadRequestResponse(c, "Invalid month parameter", err)
			return
		}
		month = &value
	}

	var year *int
	if y := c.Query("year"); y != "" {
		value, err := strconv.Atoi(y)
		if err != nil {
			h.logger.WithError(err).WithField("year", y).Error("Invalid year parameter")
			utils.BadRequestResponse(c, "Invalid year parameter", err)
			return
		}
		year = &value
	}

	content, filename, err := h.feeService.ExportFeesToExcel(status, month, year)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export fees")
		utils.InternalServerErrorResponse(c, "Failed to export fees", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
