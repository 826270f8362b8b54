package service

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/config"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// RazorpayOrderRequest represents the gateway order creation payload.
// Amount is in minor currency units.
type RazorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// RazorpayOrder represents the gateway order resource
type RazorpayOrder struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

// RazorpayErrorResponse represents a gateway error payload
type RazorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// RazorpayService defines the interface for gateway operations
type RazorpayService interface {
	CreateGatewayOrder(amount int64, receipt string, notes map[string]string) (*RazorpayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	Key() string
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	CreateOrder(studentID, feeID uint) (*response.OrderResponse, error)
	CreateMultiOrder(studentID uint, feeIDs []uint, customAmount *float64) (*response.OrderResponse, error)
	VerifyPayment(studentID, feeID uint, orderID, paymentID, signature string) (*response.ReceiptResponse, error)
	VerifyMultiPayment(studentID uint, orderID, paymentID, signature string) error
}

// paymentService implements PaymentService
type paymentService struct {
	feeRepo     repository.FeeRepository
	studentRepo repository.StudentRepository
	paymentRepo repository.PaymentRepository
	centerRepo  repository.CenterRepository
	razorpay    RazorpayService
	db          *gorm.DB
	logger      *logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(feeRepo repository.FeeRepository, studentRepo repository.StudentRepository, paymentRepo repository.PaymentRepository, centerRepo repository.CenterRepository, razorpay RazorpayService, db *gorm.DB, logger *logger.Logger) PaymentService {
	return &paymentService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		paymentRepo: paymentRepo,
		centerRepo:  centerRepo,
		razorpay:    razorpay,
		db:          db,
		logger:      logger,
	}
}

// CreateOrder creates a gateway order covering the full outstanding balance
// of a single fee record
func (s *paymentService) CreateOrder(studentID, feeID uint) (*response.OrderResponse, error) {
	fee, err := s.feeRepo.GetFeeByID(feeID)
	if err != nil {
		s.logger.WithError(err).WithField("fee_id", feeID).Error("Failed to get fee record")
		return nil, fmt.Errorf("fee record not found: %w", err)
	}

	if err := s.checkFeeOwnership(studentID, []*models.FeeRecord{fee}); err != nil {
		return nil, err
	}

	if !fee.Status.IsPayable() {
		s.logger.WithFields(map[string]interface{}{
			"fee_id": feeID,
			"status": fee.Status,
		}).Error("Fee record is not payable")
		return nil, fmt.Errorf("fee record is not payable")
	}

	balance := fee.Balance()
	if balance <= 0 {
		s.logger.WithField("fee_id", feeID).Error("Fee record has no outstanding balance")
		return nil, fmt.Errorf("fee record has no outstanding balance")
	}

	receipt := uuid.New().String()
	notes := map[string]string{
		"student_id": fmt.Sprintf("%d", studentID),
		"fee_id":     fmt.Sprintf("%d", feeID),
	}

	gatewayOrder, err := s.razorpay.CreateGatewayOrder(toMinorUnits(balance), receipt, notes)
	if err != nil {
		s.logger.WithError(err).WithField("fee_id", feeID).Error("Failed to create gateway order")
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	order := &models.PaymentOrder{
		GatewayOrderID: gatewayOrder.ID,
		Receipt:        receipt,
		StudentID:      studentID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		Status:         models.OrderStatusCreated,
	}
	if err := s.paymentRepo.CreateOrder(order); err != nil {
		s.logger.WithError(err).WithField("gateway_order_id", gatewayOrder.ID).Error("Failed to persist payment order")
		return nil, fmt.Errorf("failed to persist payment order: %w", err)
	}

	items := []*models.PaymentOrderItem{
		{
			PaymentOrderID: order.ID,
			FeeRecordID:    feeID,
			Amount:         balance,
		},
	}
	if err := s.paymentRepo.CreateOrderItems(items); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to persist order items")
		return nil, fmt.Errorf("failed to persist order items: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"student_id":       studentID,
		"fee_id":           feeID,
		"gateway_order_id": gatewayOrder.ID,
		"amount":           gatewayOrder.Amount,
	}).Info("Payment order created successfully")

	return &response.OrderResponse{
		OrderID:    gatewayOrder.ID,
		Amount:     gatewayOrder.Amount,
		Currency:   gatewayOrder.Currency,
		GatewayKey: s.razorpay.Key(),
		Receipt:    receipt,
		FeeIDs:     []uint{feeID},
		CenterName: s.centerName(),
	}, nil
}

// CreateMultiOrder creates one gateway order covering several fee records,
// optionally capped at a custom amount. With a cap, the amount is earmarked
// to fees in status precedence order.
func (s *paymentService) CreateMultiOrder(studentID uint, feeIDs []uint, customAmount *float64) (*response.OrderResponse, error) {
	if len(feeIDs) == 0 {
		return nil, fmt.Errorf("fee IDs cannot be empty")
	}

	fees, err := s.feeRepo.GetFeesByIDs(feeIDs)
	if err != nil {
		s.logger.WithError(err).WithField("fee_ids", feeIDs).Error("Failed to get fee records")
		return nil, fmt.Errorf("failed to get fee records: %w", err)
	}
	if len(fees) != len(feeIDs) {
		s.logger.WithFields(map[string]interface{}{
			"requested": len(feeIDs),
			"found":     len(fees),
		}).Error("One or more fee records not found")
		return nil, fmt.Errorf("one or more fee records not found")
	}

	if err := s.checkFeeOwnership(studentID, fees); err != nil {
		return nil, err
	}

	var combinedBalance float64
	for _, fee := range fees {
		if !fee.Status.IsPayable() {
			s.logger.WithFields(map[string]interface{}{
				"fee_id": fee.ID,
				"status": fee.Status,
			}).Error("Fee record is not payable")
			return nil, fmt.Errorf("fee record %d is not payable", fee.ID)
		}
		combinedBalance += fee.Balance()
	}
	if combinedBalance <= 0 {
		return nil, fmt.Errorf("selected fee records have no outstanding balance")
	}

	amount := combinedBalance
	if customAmount != nil {
		if *customAmount <= 0 {
			return nil, fmt.Errorf("custom amount must be greater than zero")
		}
		if *customAmount > combinedBalance {
			return nil, fmt.Errorf("custom amount exceeds the combined outstanding balance")
		}
		amount = *customAmount
	}

	allocations := planAllocations(fees, amount)

	receipt := uuid.New().String()
	notes := map[string]string{
		"student_id": fmt.Sprintf("%d", studentID),
		"fee_count":  fmt.Sprintf("%d", len(feeIDs)),
	}

	gatewayOrder, err := s.razorpay.CreateGatewayOrder(toMinorUnits(amount), receipt, notes)
	if err != nil {
		s.logger.WithError(err).WithField("fee_ids", feeIDs).Error("Failed to create gateway order")
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	order := &models.PaymentOrder{
		GatewayOrderID: gatewayOrder.ID,
		Receipt:        receipt,
		StudentID:      studentID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		Status:         models.OrderStatusCreated,
		IsMulti:        true,
		IsCustomAmount: customAmount != nil,
	}
	if err := s.paymentRepo.CreateOrder(order); err != nil {
		s.logger.WithError(err).WithField("gateway_order_id", gatewayOrder.ID).Error("Failed to persist payment order")
		return nil, fmt.Errorf("failed to persist payment order: %w", err)
	}

	items := make([]*models.PaymentOrderItem, 0, len(allocations))
	for _, alloc := range allocations {
		items = append(items, &models.PaymentOrderItem{
			PaymentOrderID: order.ID,
			FeeRecordID:    alloc.FeeID,
			Amount:         alloc.Amount,
		})
	}
	if err := s.paymentRepo.CreateOrderItems(items); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to persist order items")
		return nil, fmt.Errorf("failed to persist order items: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"student_id":       studentID,
		"fee_count":        len(feeIDs),
		"gateway_order_id": gatewayOrder.ID,
		"amount":           gatewayOrder.Amount,
		"custom_amount":    customAmount != nil,
	}).Info("Multi payment order created successfully")

	return &response.OrderResponse{
		OrderID:    gatewayOrder.ID,
		Amount:     gatewayOrder.Amount,
		Currency:   gatewayOrder.Currency,
		GatewayKey: s.razorpay.Key(),
		Receipt:    receipt,
		FeeIDs:     feeIDs,
		CenterName: s.centerName(),
	}, nil
}

// VerifyPayment checks the gateway signature for a single-fee order and,
// when valid, applies the payment to the fee record. Verifying an already
// settled order returns the recorded receipt without reapplying.
func (s *paymentService) VerifyPayment(studentID, feeID uint, orderID, paymentID, signature string) (*response.ReceiptResponse, error) {
	if !s.razorpay.VerifySignature(orderID, paymentID, signature) {
		s.logger.WithFields(map[string]interface{}{
			"order_id":   orderID,
			"payment_id": paymentID,
		}).Error("Payment signature verification failed")
		return nil, fmt.Errorf("payment signature verification failed")
	}

	order, err := s.paymentRepo.GetOrderByGatewayID(orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("Failed to get payment order")
		return nil, fmt.Errorf("payment order not found: %w", err)
	}
	if order.StudentID != studentID {
		return nil, fmt.Errorf("payment order does not belong to student")
	}

	if order.Status == models.OrderStatusPaid {
		return s.recordedReceipt(order, feeID, paymentID)
	}

	items, err := s.paymentRepo.GetOrderItems(order.ID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to get order items")
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	var item *models.PaymentOrderItem
	for _, candidate := range items {
		if candidate.FeeRecordID == feeID {
			item = candidate
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("fee record is not part of this order")
	}

	var receipt *response.ReceiptResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var fee models.FeeRecord
		if err := tx.Where("id = ?", item.FeeRecordID).First(&fee).Error; err != nil {
			return fmt.Errorf("fee record not found: %w", err)
		}

		payment, err := applyPaymentTx(tx, &fee, order, paymentID, item.Amount)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.PaymentOrder{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusPaid).Error; err != nil {
			return fmt.Errorf("failed to update payment order: %w", err)
		}

		receipt = &response.ReceiptResponse{
			ReceiptNumber:  payment.ReceiptNumber,
			FeeID:          fee.ID,
			Title:          fee.Title,
			AmountPaid:     payment.Amount,
			TaxAmount:      payment.TaxAmount,
			DiscountAmount: payment.DiscountAmount,
			PaymentID:      paymentID,
			PaidAt:         payment.CreatedAt,
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("Failed to apply payment")
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id":   orderID,
		"payment_id": paymentID,
		"fee_id":     feeID,
		"receipt":    receipt.ReceiptNumber,
	}).Info("Payment verified and applied successfully")

	return receipt, nil
}

// VerifyMultiPayment checks the gateway signature for a multi-fee order
// and, when valid, applies every allocation in one transaction
func (s *paymentService) VerifyMultiPayment(studentID uint, orderID, paymentID, signature string) error {
	if !s.razorpay.VerifySignature(orderID, paymentID, signature) {
		s.logger.WithFields(map[string]interface{}{
			"order_id":   orderID,
			"payment_id": paymentID,
		}).Error("Payment signature verification failed")
		return fmt.Errorf("payment signature verification failed")
	}

	order, err := s.paymentRepo.GetOrderByGatewayID(orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("Failed to get payment order")
		return fmt.Errorf("payment order not found: %w", err)
	}
	if order.StudentID != studentID {
		return fmt.Errorf("payment order does not belong to student")
	}

	// already settled, nothing to reapply
	if order.Status == models.OrderStatusPaid {
		return nil
	}

	items, err := s.paymentRepo.GetOrderItems(order.ID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to get order items")
		return fmt.Errorf("failed to get order items: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("payment order has no allocations")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var fee models.FeeRecord
			if err := tx.Where("id = ?", item.FeeRecordID).First(&fee).Error; err != nil {
				return fmt.Errorf("fee record not found: %w", err)
			}

			if _, err := applyPaymentTx(tx, &fee, order, paymentID, item.Amount); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.PaymentOrder{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusPaid).Error; err != nil {
			return fmt.Errorf("failed to update payment order: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("Failed to apply multi payment")
		return fmt.Errorf("failed to apply multi payment: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id":   orderID,
		"payment_id": paymentID,
		"fee_count":  len(items),
	}).Info("Multi payment verified and applied successfully")

	return nil
}

// checkFeeOwnership verifies that every fee belongs to the paying student
// directly or to one of their wards
func (s *paymentService) checkFeeOwnership(studentID uint, fees []*models.FeeRecord) error {
	var ownerIDs []uint
	seen := make(map[uint]bool)
	for _, fee := range fees {
		if fee.StudentID != studentID && !seen[fee.StudentID] {
			seen[fee.StudentID] = true
			ownerIDs = append(ownerIDs, fee.StudentID)
		}
	}
	if len(ownerIDs) == 0 {
		return nil
	}

	owners, err := s.studentRepo.GetStudentsByIDs(ownerIDs)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get fee owners")
		return fmt.Errorf("failed to get fee owners: %w", err)
	}

	ownerByID := make(map[uint]*models.Student, len(owners))
	for _, owner := range owners {
		ownerByID[owner.ID] = owner
	}

	for _, fee := range fees {
		if fee.StudentID == studentID {
			continue
		}
		owner := ownerByID[fee.StudentID]
		if owner == nil || owner.GuardianID == nil || *owner.GuardianID != studentID {
			s.logger.WithFields(map[string]interface{}{
				"student_id": studentID,
				"fee_id":     fee.ID,
			}).Error("Fee record does not belong to student")
			return fmt.Errorf("fee record %d does not belong to student", fee.ID)
		}
	}

	return nil
}

// recordedReceipt rebuilds the receipt of an already settled order
func (s *paymentService) recordedReceipt(order *models.PaymentOrder, feeID uint, paymentID string) (*response.ReceiptResponse, error) {
	payments, err := s.paymentRepo.GetPaymentsByOrderID(order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recorded payments: %w", err)
	}

	for _, payment := range payments {
		if payment.FeeRecordID != feeID {
			continue
		}

		title := ""
		if fee, err := s.feeRepo.GetFeeByID(feeID); err == nil {
			title = fee.Title
		}

		return &response.ReceiptResponse{
			ReceiptNumber:  payment.ReceiptNumber,
			FeeID:          payment.FeeRecordID,
			Title:          title,
			AmountPaid:     payment.Amount,
			TaxAmount:      payment.TaxAmount,
			DiscountAmount: payment.DiscountAmount,
			PaymentID:      paymentID,
			PaidAt:         payment.CreatedAt,
		}, nil
	}

	return nil, fmt.Errorf("no recorded payment for fee record %d", feeID)
}

// centerName returns the active center's display name for checkout labels
func (s *paymentService) centerName() string {
	center, err := s.centerRepo.GetActiveCenter()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to get active center")
		return ""
	}
	return center.Name
}

// applyPaymentTx applies one allocation to a fee record inside a
// transaction: bumps the paid amount, moves the status and writes the
// fee payment row
func applyPaymentTx(tx *gorm.DB, fee *models.FeeRecord, order *models.PaymentOrder, paymentID string, amount float64) (*models.FeePayment, error) {
	fee.PaidAmount += amount
	if fee.FinalAmount-fee.PaidAmount <= 0 {
		fee.Status = models.FeeStatusPaid
	} else {
		fee.Status = models.FeeStatusPartiallyPaid
	}

	if err := tx.Model(&models.FeeRecord{}).Where("id = ?", fee.ID).Updates(map[string]interface{}{
		"paid_amount": fee.PaidAmount,
		"status":      fee.Status,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update fee record: %w", err)
	}

	payment := &models.FeePayment{
		FeeRecordID:      fee.ID,
		PaymentOrderID:   order.ID,
		GatewayPaymentID: paymentID,
		Amount:           amount,
		TaxAmount:        fee.TaxAmount,
		DiscountAmount:   fee.DiscountAmount,
		ReceiptNumber:    newReceiptNumber(),
	}
	if err := tx.Create(payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create fee payment: %w", err)
	}

	return payment, nil
}

// feeAllocation earmarks part of an order for one fee record
type feeAllocation struct {
	FeeID  uint
	Amount float64
}

// planAllocations splits an amount across fee records, most urgent status
// first, then earliest due date. No fee receives more than its balance;
// allocation stops once the amount is exhausted.
func planAllocations(fees []*models.FeeRecord, amount float64) []feeAllocation {
	ordered := make([]*models.FeeRecord, len(fees))
	copy(ordered, fees)

	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := ordered[i].Status.Precedence(), ordered[j].Status.Precedence()
		if pi != pj {
			return pi < pj
		}
		if !ordered[i].DueDate.Equal(ordered[j].DueDate) {
			return ordered[i].DueDate.Before(ordered[j].DueDate)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var allocations []feeAllocation
	remaining := amount

	for _, fee := range ordered {
		if remaining <= 0 {
			break
		}

		slice := fee.Balance()
		if slice <= 0 {
			continue
		}
		if slice > remaining {
			slice = remaining
		}

		allocations = append(allocations, feeAllocation{
			FeeID:  fee.ID,
			Amount: slice,
		})
		remaining -= slice
	}

	return allocations
}

// toMinorUnits converts a whole-unit amount to the minor units the gateway
// expects
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// newReceiptNumber generates a short unique receipt number
func newReceiptNumber() string {
	return fmt.Sprintf("RCPT-%s", uuid.New().String()[:8])
}

// razorpayService implements RazorpayService
type razorpayService struct {
	config config.RazorpayConfig
	logger *logger.Logger
}

// NewRazorpayService creates a new instance of RazorpayService
func NewRazorpayService(cfg config.RazorpayConfig, logger *logger.Logger) RazorpayService {
	return &razorpayService{
		config: cfg,
		logger: logger,
	}
}

// CreateGatewayOrder creates an order at the gateway. Amount is in minor
// currency units.
func (g *razorpayService) CreateGatewayOrder(amount int64, receipt string, notes map[string]string) (*RazorpayOrder, error) {
	if g.config.KeyID == "" || g.config.KeySecret == "" {
		return nil, fmt.Errorf("gateway credentials not configured")
	}

	url := fmt.Sprintf("%s/v1/orders", g.config.BaseURL)

	payload := RazorpayOrderRequest{
		Amount:   amount,
		Currency: g.config.Currency,
		Receipt:  receipt,
		Notes:    notes,
	}

	bodyJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.config.KeyID, g.config.KeySecret)

	g.logger.WithFields(map[string]interface{}{
		"url":     url,
		"amount":  amount,
		"receipt": receipt,
	}).Info("Creating gateway order")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gatewayErr RazorpayErrorResponse
		if err := json.Unmarshal(body, &gatewayErr); err == nil && gatewayErr.Error.Description != "" {
			g.logger.WithFields(map[string]interface{}{
				"status_code": resp.StatusCode,
				"code":        gatewayErr.Error.Code,
				"description": gatewayErr.Error.Description,
			}).Error("Gateway rejected order")
			return nil, fmt.Errorf("gateway rejected order: %s", gatewayErr.Error.Description)
		}
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	g.logger.WithFields(map[string]interface{}{
		"order_id": order.ID,
		"amount":   order.Amount,
		"status":   order.Status,
	}).Info("Gateway order created successfully")

	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway hands to the
// client checkout: hex(HMAC(orderID + "|" + paymentID, secret))
func (g *razorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	h := hmac.New(sha256.New, []byte(g.config.KeySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Key returns the public key ID handed to the client checkout
func (g *razorpayService) Key() string {
	return g.config.KeyID
}
