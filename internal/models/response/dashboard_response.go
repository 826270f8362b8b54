package response

// DashboardStatsResponse represents the admin dashboard statistics block
type DashboardStatsResponse struct {
	TotalStudents      int64   `json:"total_students" example:"120"`
	TotalCollected     float64 `json:"total_collected" example:"450000"`
	TotalOutstanding   float64 `json:"total_outstanding" example:"86500"`
	TotalOverdue       float64 `json:"total_overdue" example:"21500"`
	OverdueCount       int64   `json:"overdue_count" example:"9"`
	PendingCount       int64   `json:"pending_count" example:"17"`
	PartiallyPaidCount int64   `json:"partially_paid_count" example:"4"`
	PaidCount          int64   `json:"paid_count" example:"88"`
	WaivedCount        int64   `json:"waived_count" example:"2"`
}
