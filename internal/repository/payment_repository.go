package repository

import (
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
)

// PaymentRepository defines the interface for payment order data operations
type PaymentRepository interface {
	CreateOrder(order *models.PaymentOrder) error
	CreateOrderItems(items []*models.PaymentOrderItem) error
	GetOrderByGatewayID(gatewayOrderID string) (*models.PaymentOrder, error)
	GetOrderItems(orderID uint) ([]*models.PaymentOrderItem, error)
	GetPaymentsByOrderID(orderID uint) ([]*models.FeePayment, error)
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreateOrder persists a new payment order
func (r *paymentRepository) CreateOrder(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

// CreateOrderItems persists the allocation items of an order
func (r *paymentRepository) CreateOrderItems(items []*models.PaymentOrderItem) error {
	return r.db.CreateInBatches(items, 100).Error
}

// GetOrderByGatewayID retrieves a payment order by its gateway order ID
func (r *paymentRepository) GetOrderByGatewayID(gatewayOrderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder

	err := r.db.Where("gateway_order_id = ?", gatewayOrderID).First(&order).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// GetOrderItems retrieves the allocation items of an order
func (r *paymentRepository) GetOrderItems(orderID uint) ([]*models.PaymentOrderItem, error) {
	var items []*models.PaymentOrderItem

	err := r.db.Where("payment_order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetPaymentsByOrderID retrieves the verified payments applied for an order
func (r *paymentRepository) GetPaymentsByOrderID(orderID uint) ([]*models.FeePayment, error) {
	var payments []*models.FeePayment

	err := r.db.Where("payment_order_id = ?", orderID).
		Order("id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
