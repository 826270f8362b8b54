package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// FeeService defines the interface for fee business operations
type FeeService interface {
	GetMyFees(studentID uint) (*response.MyFeesResponse, error)
	GetFeeSummary(studentID *uint) (*response.FeeSummaryResponse, error)
	GetFeeCalendarStats(year, month int) (*response.CalendarStatsResponse, error)
	BulkRemind(feeIDs []uint) (*response.RemindResultResponse, error)
	ListFees(status *string, month, year *int, page, limit int) ([]*response.FeeListItem, int64, error)
	ExportFeesToExcel(status *string, month, year *int) ([]byte, string, error)
}

// feeService implements FeeService
type feeService struct {
	feeRepo      repository.FeeRepository
	studentRepo  repository.StudentRepository
	centerRepo   repository.CenterRepository
	emailService EmailService
	logger       *logger.Logger
}

// NewFeeService creates a new instance of FeeService
func NewFeeService(feeRepo repository.FeeRepository, studentRepo repository.StudentRepository, centerRepo repository.CenterRepository, emailService EmailService, logger *logger.Logger) FeeService {
	return &feeService{
		feeRepo:      feeRepo,
		studentRepo:  studentRepo,
		centerRepo:   centerRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// GetMyFees retrieves the fee records of a student and their wards together
// with a summary over exactly those records
func (s *feeService) GetMyFees(studentID uint) (*response.MyFeesResponse, error) {
	subject, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", studentID).Error("Failed to get student")
		return nil, fmt.Errorf("student not found: %w", err)
	}

	wards, err := s.studentRepo.GetWards(studentID)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", studentID).Error("Failed to get wards")
		return nil, fmt.Errorf("failed to get wards: %w", err)
	}

	studentIDs := []uint{subject.ID}
	nameByID := map[uint]string{subject.ID: subject.Name}
	for _, ward := range wards {
		studentIDs = append(studentIDs, ward.ID)
		nameByID[ward.ID] = ward.Name
	}

	fees, err := s.feeRepo.GetFeesByStudentIDs(studentIDs)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", studentID).Error("Failed to get fee records")
		return nil, fmt.Errorf("failed to get fee records: %w", err)
	}

	records := make([]response.FeeItem, 0, len(fees))
	for _, fee := range fees {
		records = append(records, toFeeItem(fee, nameByID[fee.StudentID]))
	}

	s.logger.WithFields(map[string]interface{}{
		"student_id": studentID,
		"records":    len(records),
		"wards":      len(wards),
	}).Info("My fees retrieved successfully")

	return &response.MyFeesResponse{
		Records: records,
		Summary: summarizeFees(fees),
	}, nil
}

// GetFeeSummary retrieves aggregate fee totals, center-wide when studentID
// is nil
func (s *feeService) GetFeeSummary(studentID *uint) (*response.FeeSummaryResponse, error) {
	summary, err := s.feeRepo.GetFeeSummary(studentID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get fee summary")
		return nil, err
	}

	logFields := map[string]interface{}{
		"total_due":  summary.TotalDue,
		"total_paid": summary.TotalPaid,
	}
	if studentID != nil {
		logFields["student_id"] = *studentID
	}
	s.logger.WithFields(logFields).Info("Fee summary retrieved successfully")

	return summary, nil
}

// GetFeeCalendarStats retrieves one month of date-keyed due and collected
// aggregates
func (s *feeService) GetFeeCalendarStats(year, month int) (*response.CalendarStatsResponse, error) {
	if month < 1 || month > 12 {
		s.logger.WithField("month", month).Error("Invalid month parameter")
		return nil, fmt.Errorf("invalid month parameter, must be between 1-12")
	}
	if year < 1 {
		s.logger.WithField("year", year).Error("Invalid year parameter")
		return nil, fmt.Errorf("invalid year parameter")
	}

	days, err := s.feeRepo.GetCalendarStats(year, month)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"year":  year,
			"month": month,
		}).Error("Failed to get calendar stats")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"year":  year,
		"month": month,
		"days":  len(days),
	}).Info("Calendar stats retrieved successfully")

	return &response.CalendarStatsResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

// BulkRemind emails a payment reminder for the given fee records, grouped
// per student. An empty ID list reminds about every overdue fee. Counts are
// per fee record.
func (s *feeService) BulkRemind(feeIDs []uint) (*response.RemindResultResponse, error) {
	var fees []*models.FeeRecord
	var err error

	if len(feeIDs) > 0 {
		fees, err = s.feeRepo.GetFeesByIDs(feeIDs)
		if err != nil {
			s.logger.WithError(err).Error("Failed to get fee records for reminders")
			return nil, fmt.Errorf("failed to get fee records: %w", err)
		}

		// settled fees have nothing to remind about
		payable := fees[:0]
		for _, fee := range fees {
			if fee.Status.IsPayable() {
				payable = append(payable, fee)
			}
		}
		fees = payable
	} else {
		fees, err = s.feeRepo.GetOverdueFees()
		if err != nil {
			s.logger.WithError(err).Error("Failed to get overdue fee records")
			return nil, fmt.Errorf("failed to get overdue fees: %w", err)
		}
	}

	result := &response.RemindResultResponse{
		RequestedCount: len(fees),
	}
	if len(fees) == 0 {
		return result, nil
	}

	feesByStudent := make(map[uint][]*models.FeeRecord)
	var studentIDs []uint
	for _, fee := range fees {
		if _, ok := feesByStudent[fee.StudentID]; !ok {
			studentIDs = append(studentIDs, fee.StudentID)
		}
		feesByStudent[fee.StudentID] = append(feesByStudent[fee.StudentID], fee)
	}

	students, err := s.studentRepo.GetStudentsByIDs(studentIDs)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get students for reminders")
		return nil, fmt.Errorf("failed to get students: %w", err)
	}

	studentByID := make(map[uint]*models.Student, len(students))
	var guardianIDs []uint
	for _, student := range students {
		studentByID[student.ID] = student
		if student.Email == "" && student.GuardianID != nil {
			guardianIDs = append(guardianIDs, *student.GuardianID)
		}
	}

	// wards without an email address fall back to their guardian's
	guardianByID := make(map[uint]*models.Student)
	if len(guardianIDs) > 0 {
		guardians, err := s.studentRepo.GetStudentsByIDs(guardianIDs)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to resolve guardians for reminder delivery")
		} else {
			for _, guardian := range guardians {
				guardianByID[guardian.ID] = guardian
			}
		}
	}

	centerName := "your coaching center"
	if center, err := s.centerRepo.GetActiveCenter(); err == nil {
		centerName = center.Name
	} else {
		s.logger.WithError(err).Warn("Failed to get active center for reminders")
	}

	for _, studentID := range studentIDs {
		studentFees := feesByStudent[studentID]
		student := studentByID[studentID]
		if student == nil {
			result.FailedCount += len(studentFees)
			continue
		}

		toEmail := student.Email
		toName := student.Name
		if toEmail == "" && student.GuardianID != nil {
			if guardian := guardianByID[*student.GuardianID]; guardian != nil {
				toEmail = guardian.Email
				toName = guardian.Name
			}
		}

		var lines []string
		var totalDue float64
		for _, fee := range studentFees {
			lines = append(lines, fmt.Sprintf("%s (due %s): %.2f", fee.Title, fee.DueDate.Format("02 Jan 2006"), fee.Balance()))
			totalDue += fee.Balance()
		}

		if err := s.emailService.SendFeeReminder(toEmail, toName, centerName, lines, totalDue); err != nil {
			s.logger.WithError(err).WithField("student_id", studentID).Error("Failed to send fee reminder")
			result.FailedCount += len(studentFees)
			continue
		}
		result.SentCount += len(studentFees)
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": result.RequestedCount,
		"sent":      result.SentCount,
		"failed":    result.FailedCount,
	}).Info("Bulk fee reminders processed")

	return result, nil
}

// ListFees retrieves the admin fee ledger with optional filters and pagination
func (s *feeService) ListFees(status *string, month, year *int, page, limit int) ([]*response.FeeListItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if month != nil && (*month < 1 || *month > 12) {
		s.logger.WithField("month", *month).Error("Invalid month parameter")
		return nil, 0, fmt.Errorf("invalid month parameter, must be between 1-12")
	}

	items, total, err := s.feeRepo.ListFees(status, month, year, page, limit)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"page":  page,
			"limit": limit,
		}).Error("Failed to list fees")
		return nil, 0, err
	}

	logFields := map[string]interface{}{
		"page":  page,
		"limit": limit,
		"total": total,
		"count": len(items),
	}
	if status != nil {
		logFields["status"] = *status
	}
	if month != nil {
		logFields["month"] = *month
	}
	if year != nil {
		logFields["year"] = *year
	}
	s.logger.WithFields(logFields).Info("Fee ledger retrieved successfully")

	return items, total, nil
}

// ExportFeesToExcel exports the fee ledger to an Excel file
func (s *feeService) ExportFeesToExcel(status *string, month, year *int) ([]byte, string, error) {
	if month != nil && (*month < 1 || *month > 12) {
		return nil, "", fmt.Errorf("invalid month parameter, must be between 1-12")
	}

	items, err := s.feeRepo.ListFeesForExport(status, month, year)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get fee data: %w", err)
	}

	// Create a new Excel file
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Fee Ledger"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	// Set active sheet
	f.SetActiveSheet(index)

	// Define headers
	headers := []string{"No", "Student", "Fee", "Status", "Final Amount", "Paid Amount", "Balance", "Due Date"}

	// Write headers
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Style for headers
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	}

	// Write data
	for i, item := range items {
		row := i + 2

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.StudentName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.FinalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.PaidAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.Balance)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.DueDate.Format("2006-01-02"))
	}

	// Auto-fit columns
	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	// Delete default Sheet1 if it exists
	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("fee_ledger_%s.xlsx", timestamp)

	// Save to buffer
	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

// toFeeItem maps a fee record to its response shape
func toFeeItem(fee *models.FeeRecord, studentName string) response.FeeItem {
	return response.FeeItem{
		ID:             fee.ID,
		StudentID:      fee.StudentID,
		StudentName:    studentName,
		Title:          fee.Title,
		Status:         string(fee.Status),
		FinalAmount:    fee.FinalAmount,
		PaidAmount:     fee.PaidAmount,
		TaxAmount:      fee.TaxAmount,
		DiscountAmount: fee.DiscountAmount,
		Balance:        fee.Balance(),
		DueDate:        fee.DueDate,
	}
}

// summarizeFees folds fee records into the aggregate shown on fee screens.
// An overdue balance counts into both total_due and total_overdue; unknown
// statuses are not counted.
func summarizeFees(fees []*models.FeeRecord) *response.FeeSummaryResponse {
	summary := &response.FeeSummaryResponse{}

	for _, fee := range fees {
		summary.TotalPaid += fee.PaidAmount

		switch {
		case fee.Status == models.FeeStatusOverdue:
			summary.TotalDue += fee.Balance()
			summary.TotalOverdue += fee.Balance()
			summary.OverdueCount++
		case fee.Status.IsPayable():
			summary.TotalDue += fee.Balance()
			summary.PendingCount++
		case fee.Status.IsSettled():
			summary.PaidCount++
		}
	}

	return summary
}
