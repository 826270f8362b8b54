package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
)

// FeeRepository defines the interface for fee record data operations
type FeeRepository interface {
	GetFeeByID(id uint) (*models.FeeRecord, error)
	GetFeesByIDs(ids []uint) ([]*models.FeeRecord, error)
	GetFeesByStudentIDs(studentIDs []uint) ([]*models.FeeRecord, error)
	GetFeeSummary(studentID *uint) (*response.FeeSummaryResponse, error)
	GetCalendarStats(year, month int) (map[string]response.CalendarDayStats, error)
	GetOverdueFees() ([]*models.FeeRecord, error)
	ListFees(status *string, month, year *int, page, limit int) ([]*response.FeeListItem, int64, error)
	ListFeesForExport(status *string, month, year *int) ([]*response.FeeListItem, error)
	MarkPendingFeesOverdue(asOf time.Time) (int64, error)
}

// feeRepository implements FeeRepository
type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new instance of FeeRepository
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{
		db: db,
	}
}

// GetFeeByID retrieves a fee record by ID
func (r *feeRepository) GetFeeByID(id uint) (*models.FeeRecord, error) {
	var fee models.FeeRecord

	err := r.db.Where("id = ?", id).First(&fee).Error
	if err != nil {
		return nil, err
	}

	return &fee, nil
}

// GetFeesByIDs retrieves fee records matching the given IDs
func (r *feeRepository) GetFeesByIDs(ids []uint) ([]*models.FeeRecord, error) {
	var fees []*models.FeeRecord

	err := r.db.Where("id IN ?", ids).Find(&fees).Error
	if err != nil {
		return nil, err
	}

	return fees, nil
}

// GetFeesByStudentIDs retrieves all fee records for the given students,
// oldest due date first
func (r *feeRepository) GetFeesByStudentIDs(studentIDs []uint) ([]*models.FeeRecord, error) {
	var fees []*models.FeeRecord

	err := r.db.Where("student_id IN ?", studentIDs).
		Order("due_date ASC, id ASC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}

	return fees, nil
}

// GetFeeSummary aggregates fee totals, optionally scoped to one student.
// Overdue balances count into both total_due and total_overdue.
func (r *feeRepository) GetFeeSummary(studentID *uint) (*response.FeeSummaryResponse, error) {
	var result response.FeeSummaryResponse

	query := `
		SELECT
			COALESCE(SUM(GREATEST(final_amount - paid_amount, 0)) FILTER (WHERE status IN ('PENDING', 'OVERDUE', 'PARTIALLY_PAID')), 0) AS total_due,
			COALESCE(SUM(paid_amount), 0) AS total_paid,
			COALESCE(SUM(GREATEST(final_amount - paid_amount, 0)) FILTER (WHERE status = 'OVERDUE'), 0) AS total_overdue,
			COUNT(*) FILTER (WHERE status = 'OVERDUE') AS overdue_count,
			COUNT(*) FILTER (WHERE status IN ('PENDING', 'PARTIALLY_PAID')) AS pending_count,
			COUNT(*) FILTER (WHERE status IN ('PAID', 'WAIVED')) AS paid_count
		FROM fee_records
	`

	var args []interface{}

	if studentID != nil {
		query += " WHERE student_id = ?"
		args = append(args, *studentID)
	}

	err := r.db.Raw(query, args...).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetCalendarStats aggregates fee activity per day for one month: balances
// falling due on each day and payments collected on each day.
func (r *feeRepository) GetCalendarStats(year, month int) (map[string]response.CalendarDayStats, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	days := make(map[string]response.CalendarDayStats)

	dueQuery := `
		SELECT due_date::date AS day,
			COALESCE(SUM(GREATEST(final_amount - paid_amount, 0)), 0) AS amount,
			COUNT(*) AS cnt
		FROM fee_records
		WHERE due_date >= ? AND due_date < ?
		AND status IN ('PENDING', 'OVERDUE', 'PARTIALLY_PAID')
		GROUP BY due_date::date
	`

	dueRows, err := r.db.Raw(dueQuery, start, end).Rows()
	if err != nil {
		return nil, err
	}
	defer dueRows.Close()

	for dueRows.Next() {
		var day time.Time
		var amount float64
		var cnt int

		if err := dueRows.Scan(&day, &amount, &cnt); err != nil {
			return nil, err
		}

		key := day.Format("2006-01-02")
		stats := days[key]
		stats.DueAmount = amount
		stats.DueCount = cnt
		days[key] = stats
	}

	collectedQuery := `
		SELECT created_at::date AS day,
			COALESCE(SUM(amount), 0) AS amount,
			COUNT(*) AS cnt
		FROM fee_payments
		WHERE created_at >= ? AND created_at < ?
		GROUP BY created_at::date
	`

	collectedRows, err := r.db.Raw(collectedQuery, start, end).Rows()
	if err != nil {
		return nil, err
	}
	defer collectedRows.Close()

	for collectedRows.Next() {
		var day time.Time
		var amount float64
		var cnt int

		if err := collectedRows.Scan(&day, &amount, &cnt); err != nil {
			return nil, err
		}

		key := day.Format("2006-01-02")
		stats := days[key]
		stats.CollectedAmount = amount
		stats.CollectedCount = cnt
		days[key] = stats
	}

	return days, nil
}

// GetOverdueFees retrieves all overdue fee records, oldest due date first
func (r *feeRepository) GetOverdueFees() ([]*models.FeeRecord, error) {
	var fees []*models.FeeRecord

	err := r.db.Where("status = ?", models.FeeStatusOverdue).
		Order("due_date ASC, id ASC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}

	return fees, nil
}

// ListFees retrieves the admin fee ledger with optional status, month and
// year filters plus pagination
func (r *feeRepository) ListFees(status *string, month, year *int, page, limit int) ([]*response.FeeListItem, int64, error) {
	var items []*response.FeeListItem
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	where := ""
	var args []interface{}

	if status != nil {
		where += " AND f.status = ?"
		args = append(args, *status)
	}
	if month != nil {
		where += " AND EXTRACT(MONTH FROM f.due_date) = ?"
		args = append(args, *month)
	}
	if year != nil {
		where += " AND EXTRACT(YEAR FROM f.due_date) = ?"
		args = append(args, *year)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM fee_records f
		JOIN students s ON s.id = f.student_id
		WHERE 1 = 1
	` + where

	countArgs := append([]interface{}{}, args...)
	if err := r.db.Raw(countQuery, countArgs...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := `
		SELECT f.id, s.name AS student_name, f.title, f.status,
			f.final_amount, f.paid_amount,
			GREATEST(f.final_amount - f.paid_amount, 0) AS balance,
			f.due_date
		FROM fee_records f
		JOIN students s ON s.id = f.student_id
		WHERE 1 = 1
	` + where + `
		ORDER BY f.due_date DESC, f.id DESC
		LIMIT ? OFFSET ?
	`

	offset := (page - 1) * limit
	dataArgs := append([]interface{}{}, args...)
	dataArgs = append(dataArgs, limit, offset)

	if err := r.db.Raw(dataQuery, dataArgs...).Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListFeesForExport retrieves the full ledger for the Excel export with the
// same filters as ListFees but no pagination
func (r *feeRepository) ListFeesForExport(status *string, month, year *int) ([]*response.FeeListItem, error) {
	var items []*response.FeeListItem

	where := ""
	var args []interface{}

	if status != nil {
		where += " AND f.status = ?"
		args = append(args, *status)
	}
	if month != nil {
		where += " AND EXTRACT(MONTH FROM f.due_date) = ?"
		args = append(args, *month)
	}
	if year != nil {
		where += " AND EXTRACT(YEAR FROM f.due_date) = ?"
		args = append(args, *year)
	}

	query := `
		SELECT f.id, s.name AS student_name, f.title, f.status,
			f.final_amount, f.paid_amount,
			GREATEST(f.final_amount - f.paid_amount, 0) AS balance,
			f.due_date
		FROM fee_records f
		JOIN students s ON s.id = f.student_id
		WHERE 1 = 1
	` + where + `
		ORDER BY f.due_date ASC, f.id ASC
	`

	if err := r.db.Raw(query, args...).Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// MarkPendingFeesOverdue flips pending fees past their due date to overdue
// and returns the number of records updated
func (r *feeRepository) MarkPendingFeesOverdue(asOf time.Time) (int64, error) {
	tx := r.db.Model(&models.FeeRecord{}).
		Where("status = ? AND due_date < ?", models.FeeStatusPending, asOf).
		Update("status", models.FeeStatusOverdue)
	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
