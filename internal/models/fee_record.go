package models

import (
	"time"
)

// FeeStatus enumerates the lifecycle states of a fee record.
type FeeStatus string

const (
	FeeStatusPending       FeeStatus = "PENDING"
	FeeStatusOverdue       FeeStatus = "OVERDUE"
	FeeStatusPartiallyPaid FeeStatus = "PARTIALLY_PAID"
	FeeStatusPaid          FeeStatus = "PAID"
	FeeStatusWaived        FeeStatus = "WAIVED"
)

// Precedence returns the display rank of a status. Overdue fees sort
// first, settled ones last, unknown statuses after everything else.
func (s FeeStatus) Precedence() int {
	switch s {
	case FeeStatusOverdue:
		return 0
	case FeeStatusPending:
		return 1
	case FeeStatusPartiallyPaid:
		return 2
	case FeeStatusPaid:
		return 3
	case FeeStatusWaived:
		return 4
	default:
		return 5
	}
}

// IsPayable reports whether a fee in this status still accepts payment.
func (s FeeStatus) IsPayable() bool {
	switch s {
	case FeeStatusPending, FeeStatusOverdue, FeeStatusPartiallyPaid:
		return true
	default:
		return false
	}
}

// IsSettled reports whether a fee in this status is closed.
func (s FeeStatus) IsSettled() bool {
	return s == FeeStatusPaid || s == FeeStatusWaived
}

// FeeRecord represents the fee_records table
type FeeRecord struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	CenterID       uint       `json:"center_id" gorm:"column:center_id;index"`
	StudentID      uint       `json:"student_id" gorm:"column:student_id;index"`
	Title          string     `json:"title" gorm:"column:title"`
	Notes          *string    `json:"notes" gorm:"column:notes"`
	Status         FeeStatus  `json:"status" gorm:"column:status;index"`
	FinalAmount    float64    `json:"final_amount" gorm:"column:final_amount"`
	PaidAmount     float64    `json:"paid_amount" gorm:"column:paid_amount"`
	TaxAmount      float64    `json:"tax_amount" gorm:"column:tax_amount"`
	DiscountAmount float64    `json:"discount_amount" gorm:"column:discount_amount"`
	DueDate        time.Time  `json:"due_date" gorm:"column:due_date;index"`
	ValidFrom      *time.Time `json:"valid_from" gorm:"column:valid_from"`
	ValidUntil     *time.Time `json:"valid_until" gorm:"column:valid_until"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for FeeRecord
func (FeeRecord) TableName() string {
	return "fee_records"
}

// Balance returns the outstanding amount on the record, never negative.
func (r *FeeRecord) Balance() float64 {
	b := r.FinalAmount - r.PaidAmount
	if b < 0 {
		return 0
	}
	return b
}
