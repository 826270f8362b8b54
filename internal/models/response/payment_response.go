package response

import (
	"time"
)

// OrderResponse represents a gateway order handed to the client checkout.
// Amount is in minor currency units as the gateway expects.
type OrderResponse struct {
	OrderID    string  `json:"order_id" example:"order_Nxh2ZkPqzMsaAb"`
	Amount     int64   `json:"amount" example:"550000"`
	Currency   string  `json:"currency" example:"INR"`
	GatewayKey string  `json:"gateway_key" example:"rzp_test_4kB2mBvCdEfGh"`
	Receipt    string  `json:"receipt" example:"rcpt_7f3a9c"`
	FeeIDs     []uint  `json:"fee_ids,omitempty" example:"41,42"`
	CenterName string  `json:"center_name" example:"Tutorix Coaching Center"`
	Notes      *string `json:"notes,omitempty"`
}

// ReceiptResponse represents a verified single-fee settlement
type ReceiptResponse struct {
	ReceiptNumber  string    `json:"receipt_number" example:"RCPT-8c61e2d4"`
	FeeID          uint      `json:"fee_id" example:"41"`
	Title          string    `json:"title" example:"March Tuition"`
	AmountPaid     float64   `json:"amount_paid" example:"4000"`
	TaxAmount      float64   `json:"tax_amount" example:"300"`
	DiscountAmount float64   `json:"discount_amount" example:"200"`
	PaymentID      string    `json:"payment_id" example:"pay_Nxh3QwErtYuIop"`
	PaidAt         time.Time `json:"paid_at"`
}

// RecentPaymentItem represents one row of the dashboard recent-payments feed
type RecentPaymentItem struct {
	ID               uint      `json:"id" example:"93"`
	StudentName      string    `json:"student_name" example:"Aarav Sharma"`
	FeeTitle         string    `json:"fee_title" example:"March Tuition"`
	Amount           float64   `json:"amount" example:"4000"`
	ReceiptNumber    string    `json:"receipt_number" example:"RCPT-8c61e2d4"`
	GatewayPaymentID string    `json:"gateway_payment_id" example:"pay_Nxh3QwErtYuIop"`
	CreatedAt        time.Time `json:"created_at"`
}
