package repository

import (
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetDashboardStats(month, year *int) (*response.DashboardStatsResponse, error)
	GetRecentPayments(page, limit int) ([]*response.RecentPaymentItem, int64, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDashboardStats retrieves center-wide fee statistics with optional
// month and year filters on the due date
func (r *dashboardRepository) GetDashboardStats(month, year *int) (*response.DashboardStatsResponse, error) {
	var result response.DashboardStatsResponse

	query := `
		SELECT
			COUNT(DISTINCT student_id) AS total_students,
			COALESCE(SUM(paid_amount), 0) AS total_collected,
			COALESCE(SUM(GREATEST(final_amount - paid_amount, 0)) FILTER (WHERE status IN ('PENDING', 'OVERDUE', 'PARTIALLY_PAID')), 0) AS total_outstanding,
			COALESCE(SUM(GREATEST(final_amount - paid_amount, 0)) FILTER (WHERE status = 'OVERDUE'), 0) AS total_overdue,
			COUNT(*) FILTER (WHERE status = 'OVERDUE') AS overdue_count,
			COUNT(*) FILTER (WHERE status = 'PENDING') AS pending_count,
			COUNT(*) FILTER (WHERE status = 'PARTIALLY_PAID') AS partially_paid_count,
			COUNT(*) FILTER (WHERE status = 'PAID') AS paid_count,
			COUNT(*) FILTER (WHERE status = 'WAIVED') AS waived_count
		FROM fee_records
		WHERE 1 = 1
	`

	var args []interface{}

	if month != nil {
		query += " AND EXTRACT(MONTH FROM due_date) = ?"
		args = append(args, *month)
	}
	if year != nil {
		query += " AND EXTRACT(YEAR FROM due_date) = ?"
		args = append(args, *year)
	}

	err := r.db.Raw(query, args...).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetRecentPayments retrieves verified payments newest first with pagination
func (r *dashboardRepository) GetRecentPayments(page, limit int) ([]*response.RecentPaymentItem, int64, error) {
	var payments []*response.RecentPaymentItem
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	countQuery := `
		SELECT COUNT(*)
		FROM fee_payments fp
		JOIN fee_records f ON f.id = fp.fee_record_id
		JOIN students s ON s.id = f.student_id
	`

	if err := r.db.Raw(countQuery).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := `
		SELECT fp.id, s.name AS student_name, f.title AS fee_title,
			fp.amount, fp.receipt_number, fp.gateway_payment_id, fp.created_at
		FROM fee_payments fp
		JOIN fee_records f ON f.id = fp.fee_record_id
		JOIN students s ON s.id = f.student_id
		ORDER BY fp.created_at DESC, fp.id DESC
		LIMIT ? OFFSET ?
	`

	offset := (page - 1) * limit

	if err := r.db.Raw(dataQuery, limit, offset).Scan(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
