package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

// CreateOrderRequest represents the request for a single-fee payment order
type CreateOrderRequest struct {
	StudentID uint `json:"student_id" binding:"required" example:"42"`
	FeeID     uint `json:"fee_id" binding:"required" example:"123"`
}

// CreateMultiOrderRequest represents the request for a combined payment order.
// Amount caps the order below the combined balance when set.
type CreateMultiOrderRequest struct {
	StudentID uint     `json:"student_id" binding:"required" example:"42"`
	FeeIDs    []uint   `json:"fee_ids" binding:"required,min=1"`
	Amount    *float64 `json:"amount,omitempty" example:"400"`
}

// VerifyPaymentRequest represents the checkout result for a single-fee order
type VerifyPaymentRequest struct {
	StudentID uint   `json:"student_id" binding:"required" example:"42"`
	FeeID     uint   `json:"fee_id" binding:"required" example:"123"`
	OrderID   string `json:"order_id" binding:"required" example:"order_NXhj4aBcDeFgHi"`
	PaymentID string `json:"payment_id" binding:"required" example:"pay_NXhk8zYxWvUtSr"`
	Signature string `json:"signature" binding:"required"`
}

// VerifyMultiPaymentRequest represents the checkout result for a combined order
type VerifyMultiPaymentRequest struct {
	StudentID uint   `json:"student_id" binding:"required" example:"42"`
	OrderID   string `json:"order_id" binding:"required" example:"order_NXhj4aBcDeFgHi"`
	PaymentID string `json:"payment_id" binding:"required" example:"pay_NXhk8zYxWvUtSr"`
	Signature string `json:"signature" binding:"required"`
}

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreateOrder creates a gateway order for one fee record
// @Summary Create payment order
// @Description Create a gateway order covering the full outstanding balance of one fee record
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order request"
// @Success 200 {object} utils.APIResponse{data=response.OrderResponse} "Order created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	order, err := h.paymentService.CreateOrder(req.StudentID, req.FeeID)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"student_id": req.StudentID,
			"fee_id":     req.FeeID,
		}).Error("Failed to create payment order")
		utils.BadRequestResponse(c, "Failed to create payment order", err)
		return
	}

	utils.SuccessResponse(c, "Payment order created successfully", order)
}

// CreateMultiOrder creates one gateway order covering several fee records
// @Summary Create multi payment order
// @Description Create a combined gateway order for several fee records, optionally capped at a custom amount
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreateMultiOrderRequest true "Multi order request"
// @Success 200 {object} utils.APIResponse{data=response.OrderResponse} "Order created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/multi-order [post]
func (h *PaymentHandler) CreateMultiOrder(c *gin.Context) {
	var req CreateMultiOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	order, err := h.paymentService.CreateMultiOrder(req.StudentID, req.FeeIDs, req.Amount)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"student_id": req.StudentID,
			"fee_count":  len(req.FeeIDs),
		}).Error("Failed to create multi payment order")
		utils.BadRequestResponse(c, "Failed to create payment order", err)
		return
	}

	utils.SuccessResponse(c, "Payment order created successfully", order)
}

// VerifyPayment verifies a checkout result and applies the payment
// @Summary Verify payment
// @Description Verify the gateway signature for a single-fee order and apply the payment to the fee record
// @Tags payments
// @Accept json
// @Produce json
// @Param request body VerifyPaymentRequest true "Verification request"
// @Success 200 {object} utils.APIResponse{data=response.ReceiptResponse} "Payment verified successfully"
// @Failure 400 {object} utils.APIResponse "Verification failed"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	receipt, err := h.paymentService.VerifyPayment(req.StudentID, req.FeeID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
		}).Error("Failed to verify payment")
		utils.BadRequestResponse(c, "Payment verification failed", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"order_id": req.OrderID,
		"fee_id":   req.FeeID,
		"receipt":  receipt.ReceiptNumber,
	}).Info("Payment verified successfully")

	utils.SuccessResponse(c, "Payment verified successfully", receipt)
}

// VerifyMultiPayment verifies a checkout result for a combined order
// @Summary Verify multi payment
// @Description Verify the gateway signature for a combined order and apply every allocation
// @Tags payments
// @Accept json
// @Produce json
// @Param request body VerifyMultiPaymentRequest true "Verification request"
// @Success 200 {object} utils.APIResponse "Payment verified successfully"
// @Failure 400 {object} utils.APIResponse "Verification failed"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/verify-multi [post]
func (h *PaymentHandler) VerifyMultiPayment(c *gin.Context) {
	var req VerifyMultiPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.paymentService.VerifyMultiPayment(req.StudentID, req.OrderID, req.PaymentID, req.Signature); err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
		}).Error("Failed to verify multi payment")
		utils.BadRequestResponse(c, "Payment verification failed", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"order_id":   req.OrderID,
		"payment_id": req.PaymentID,
	}).Info("Multi payment verified successfully")

	utils.SuccessResponse(c, "Payment verified successfully", nil)
}
