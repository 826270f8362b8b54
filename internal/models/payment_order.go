package models

import (
	"time"
)

// Payment order lifecycle states.
const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// PaymentOrder represents the payment_orders table. It mirrors a gateway
// order locally; Amount is in minor currency units as the gateway expects.
type PaymentOrder struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	GatewayOrderID string    `json:"gateway_order_id" gorm:"column:gateway_order_id;uniqueIndex"`
	Receipt        string    `json:"receipt" gorm:"column:receipt"`
	StudentID      uint      `json:"student_id" gorm:"column:student_id;index"`
	Amount         int64     `json:"amount" gorm:"column:amount"`
	Currency       string    `json:"currency" gorm:"column:currency"`
	Status         string    `json:"status" gorm:"column:status"`
	IsMulti        bool      `json:"is_multi" gorm:"column:is_multi"`
	IsCustomAmount bool      `json:"is_custom_amount" gorm:"column:is_custom_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the insert table name for PaymentOrder
func (PaymentOrder) TableName() string {
	return "payment_orders"
}

// PaymentOrderItem represents the payment_order_items table. Each row
// earmarks part of an order for one fee record; a single-fee order has
// exactly one row. Amount is in whole currency units.
type PaymentOrderItem struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	PaymentOrderID uint      `json:"payment_order_id" gorm:"column:payment_order_id;index"`
	FeeRecordID    uint      `json:"fee_record_id" gorm:"column:fee_record_id;index"`
	Amount         float64   `json:"amount" gorm:"column:amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName sets the insert table name for PaymentOrderItem
func (PaymentOrderItem) TableName() string {
	return "payment_order_items"
}
