package models

import (
	"time"
)

// FeePayment represents the fee_payments table. One row per fee record per
// verified payment; Amount is the slice applied to that record in whole
// currency units.
type FeePayment struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	FeeRecordID      uint      `json:"fee_record_id" gorm:"column:fee_record_id;index"`
	PaymentOrderID   uint      `json:"payment_order_id" gorm:"column:payment_order_id;index"`
	GatewayPaymentID string    `json:"gateway_payment_id" gorm:"column:gateway_payment_id"`
	Amount           float64   `json:"amount" gorm:"column:amount"`
	TaxAmount        float64   `json:"tax_amount" gorm:"column:tax_amount"`
	DiscountAmount   float64   `json:"discount_amount" gorm:"column:discount_amount"`
	ReceiptNumber    string    `json:"receipt_number" gorm:"column:receipt_number"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName sets the insert table name for FeePayment
func (FeePayment) TableName() string {
	return "fee_payments"
}
