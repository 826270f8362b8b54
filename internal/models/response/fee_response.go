package response

import (
	"time"
)

// FeeItem represents a single fee record in my-fees and ledger responses
type FeeItem struct {
	ID             uint      `json:"id" example:"41"`
	StudentID      uint      `json:"student_id" example:"7"`
	StudentName    string    `json:"student_name" example:"Aarav Sharma"`
	Title          string    `json:"title" example:"March Tuition"`
	Status         string    `json:"status" example:"OVERDUE"`
	FinalAmount    float64   `json:"final_amount" example:"5500"`
	PaidAmount     float64   `json:"paid_amount" example:"1500"`
	TaxAmount      float64   `json:"tax_amount" example:"300"`
	DiscountAmount float64   `json:"discount_amount" example:"200"`
	Balance        float64   `json:"balance" example:"4000"`
	DueDate        time.Time `json:"due_date"`
}

// FeeSummaryResponse represents aggregate fee totals for a student or the center
type FeeSummaryResponse struct {
	TotalDue     float64 `json:"total_due" example:"12500"`
	TotalPaid    float64 `json:"total_paid" example:"40000"`
	TotalOverdue float64 `json:"total_overdue" example:"5500"`
	OverdueCount int     `json:"overdue_count" example:"2"`
	PendingCount int     `json:"pending_count" example:"3"`
	PaidCount    int     `json:"paid_count" example:"14"`
}

// MyFeesResponse represents the my-fees payload: the subject's own and ward
// fee records plus an optional precomputed summary
type MyFeesResponse struct {
	Records []FeeItem           `json:"records"`
	Summary *FeeSummaryResponse `json:"summary,omitempty"`
}

// CalendarDayStats represents fee activity aggregated on one calendar day
type CalendarDayStats struct {
	DueAmount       float64 `json:"due_amount" example:"7500"`
	DueCount        int     `json:"due_count" example:"3"`
	CollectedAmount float64 `json:"collected_amount" example:"4000"`
	CollectedCount  int     `json:"collected_count" example:"2"`
}

// CalendarStatsResponse represents one month of date-keyed fee activity.
// Days is keyed by ISO date (2006-01-02); days without activity are absent.
type CalendarStatsResponse struct {
	Year  int                         `json:"year" example:"2026"`
	Month int                         `json:"month" example:"3"`
	Days  map[string]CalendarDayStats `json:"days"`
}

// RemindResultResponse represents the outcome of a bulk reminder run
type RemindResultResponse struct {
	RequestedCount int `json:"requested_count" example:"12"`
	SentCount      int `json:"sent_count" example:"11"`
	FailedCount    int `json:"failed_count" example:"1"`
}

// FeeListItem represents one row of the admin fee ledger
type FeeListItem struct {
	ID          uint      `json:"id" example:"41"`
	StudentName string    `json:"student_name" example:"Aarav Sharma"`
	Title       string    `json:"title" example:"March Tuition"`
	Status      string    `json:"status" example:"PENDING"`
	FinalAmount float64   `json:"final_amount" example:"5500"`
	PaidAmount  float64   `json:"paid_amount" example:"1500"`
	Balance     float64   `json:"balance" example:"4000"`
	DueDate     time.Time `json:"due_date"`
}
