package feeclient

import (
	"time"
)

// FeeStatus is the lifecycle status of a fee record
type FeeStatus string

const (
	StatusPending       FeeStatus = "PENDING"
	StatusOverdue       FeeStatus = "OVERDUE"
	StatusPartiallyPaid FeeStatus = "PARTIALLY_PAID"
	StatusPaid          FeeStatus = "PAID"
	StatusWaived        FeeStatus = "WAIVED"
)

// precedence is the default list ordering rank, most urgent first.
// Unrecognized statuses sort last.
func (s FeeStatus) precedence() int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusPending:
		return 1
	case StatusPartiallyPaid:
		return 2
	case StatusPaid:
		return 3
	case StatusWaived:
		return 4
	default:
		return 5
	}
}

// IsPayable reports whether a record in this status still accepts payment
func (s FeeStatus) IsPayable() bool {
	return s == StatusPending || s == StatusOverdue || s == StatusPartiallyPaid
}

// IsSettled reports whether a record in this status is closed
func (s FeeStatus) IsSettled() bool {
	return s == StatusPaid || s == StatusWaived
}

// FeeRecord is one fee line as served by the fee service
type FeeRecord struct {
	ID             uint      `json:"id"`
	StudentID      uint      `json:"student_id"`
	StudentName    string    `json:"student_name"`
	Title          string    `json:"title"`
	Status         FeeStatus `json:"status"`
	FinalAmount    float64   `json:"final_amount"`
	PaidAmount     float64   `json:"paid_amount"`
	TaxAmount      float64   `json:"tax_amount"`
	DiscountAmount float64   `json:"discount_amount"`
	Balance        float64   `json:"balance"`
	DueDate        time.Time `json:"due_date"`
}

// FeeSummary holds aggregate fee totals for a student or the whole center
type FeeSummary struct {
	TotalDue     float64 `json:"total_due"`
	TotalPaid    float64 `json:"total_paid"`
	TotalOverdue float64 `json:"total_overdue"`
	OverdueCount int     `json:"overdue_count"`
	PendingCount int     `json:"pending_count"`
	PaidCount    int     `json:"paid_count"`
}

// MyFees is the my-fees payload: the subject's own and ward fee records
// plus an optional server-computed summary
type MyFees struct {
	Records []FeeRecord `json:"records"`
	Summary *FeeSummary `json:"summary,omitempty"`
}

// CalendarDayStats is fee activity aggregated on one calendar day
type CalendarDayStats struct {
	DueAmount       float64 `json:"due_amount"`
	DueCount        int     `json:"due_count"`
	CollectedAmount float64 `json:"collected_amount"`
	CollectedCount  int     `json:"collected_count"`
}

// CalendarStats is one month of date-keyed fee activity. Days is keyed
// by ISO date (2006-01-02); days without activity are absent.
type CalendarStats struct {
	Year  int                         `json:"year"`
	Month int                         `json:"month"`
	Days  map[string]CalendarDayStats `json:"days"`
}

// RemindResult is the outcome of a bulk reminder run
type RemindResult struct {
	RequestedCount int `json:"requested_count"`
	SentCount      int `json:"sent_count"`
	FailedCount    int `json:"failed_count"`
}

// Order is a gateway order ready for checkout. Amount is in minor
// currency units as the gateway expects.
type Order struct {
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	GatewayKey string `json:"gateway_key"`
	Receipt    string `json:"receipt"`
	FeeIDs     []uint `json:"fee_ids,omitempty"`
	CenterName string `json:"center_name"`
}

// Receipt is a verified single-fee settlement
type Receipt struct {
	ReceiptNumber  string    `json:"receipt_number"`
	FeeID          uint      `json:"fee_id"`
	Title          string    `json:"title"`
	AmountPaid     float64   `json:"amount_paid"`
	TaxAmount      float64   `json:"tax_amount"`
	DiscountAmount float64   `json:"discount_amount"`
	PaymentID      string    `json:"payment_id"`
	PaidAt         time.Time `json:"paid_at"`
}

// Contact is the payer's prefill info for the gateway checkout
type Contact struct {
	Name  string
	Email string
	Phone string
}

// CheckoutOptions describes one checkout attempt handed to the gateway UI
type CheckoutOptions struct {
	OrderID    string
	Amount     int64 // minor units
	GatewayKey string
	Title      string
	Contact    Contact
}

// CheckoutResult is the gateway's proof of a completed payment
type CheckoutResult struct {
	OrderID   string
	PaymentID string
	Signature string
}
