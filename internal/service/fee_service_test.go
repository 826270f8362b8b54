package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
)

type sentReminder struct {
	toEmail  string
	toName   string
	lines    []string
	totalDue float64
}

type fakeEmailService struct {
	err  error
	sent []sentReminder
}

func (f *fakeEmailService) SendFeeReminder(toEmail, toName, centerName string, lines []string, totalDue float64) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentReminder{toEmail: toEmail, toName: toName, lines: lines, totalDue: totalDue})
	return nil
}

func newFeeFixture() (*fakeFeeRepo, *fakeEmailService, FeeService) {
	guardianID := uint(42)
	feeRepo := &fakeFeeRepo{fees: map[uint]*models.FeeRecord{
		1: {ID: 1, StudentID: 42, Title: "March Tuition", Status: models.FeeStatusOverdue, FinalAmount: 500, DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		2: {ID: 2, StudentID: 42, Title: "April Tuition", Status: models.FeeStatusPending, FinalAmount: 300, DueDate: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)},
		3: {ID: 3, StudentID: 42, Title: "February Tuition", Status: models.FeeStatusPaid, FinalAmount: 400, PaidAmount: 400, DueDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		4: {ID: 4, StudentID: 7, Title: "Ward Lab Fee", Status: models.FeeStatusPending, FinalAmount: 200, DueDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
	}}
	studentRepo := &fakeStudentRepo{students: map[uint]*models.Student{
		42: {ID: 42, Name: "Aarav Sharma", Email: "aarav@example.com"},
		7:  {ID: 7, Name: "Diya Sharma", Email: "diya@example.com", GuardianID: &guardianID},
	}}
	centerRepo := &fakeCenterRepo{center: &models.Center{ID: 1, Name: "Nalanda Coaching Center"}}
	emailService := &fakeEmailService{}

	svc := NewFeeService(feeRepo, studentRepo, centerRepo, emailService, testLogger)
	return feeRepo, emailService, svc
}

func TestGetMyFees(t *testing.T) {
	t.Run("merges_ward_fees", func(t *testing.T) {
		_, _, svc := newFeeFixture()

		resp, err := svc.GetMyFees(42)

		require.NoError(t, err)
		require.Len(t, resp.Records, 4, "own fees plus ward fees")

		byID := make(map[uint]response.FeeItem)
		for _, r := range resp.Records {
			byID[r.ID] = r
		}
		assert.Equal(t, "Aarav Sharma", byID[1].StudentName)
		assert.Equal(t, "Diya Sharma", byID[4].StudentName)
		assert.Equal(t, 500.0, byID[1].Balance)

		require.NotNil(t, resp.Summary)
		assert.Equal(t, 1000.0, resp.Summary.TotalDue)
		assert.Equal(t, 500.0, resp.Summary.TotalOverdue)
		assert.Equal(t, 400.0, resp.Summary.TotalPaid)
		assert.Equal(t, 1, resp.Summary.OverdueCount)
		assert.Equal(t, 2, resp.Summary.PendingCount)
		assert.Equal(t, 1, resp.Summary.PaidCount)
	})

	t.Run("unknown_student", func(t *testing.T) {
		_, _, svc := newFeeFixture()

		_, err := svc.GetMyFees(999)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "student not found")
	})
}

func TestGetFeeCalendarStats(t *testing.T) {
	t.Run("wraps_repo_days", func(t *testing.T) {
		feeRepo, _, svc := newFeeFixture()
		feeRepo.calendarDays = map[string]response.CalendarDayStats{
			"2026-03-10": {DueAmount: 500, DueCount: 1},
		}

		stats, err := svc.GetFeeCalendarStats(2026, 3)

		require.NoError(t, err)
		assert.Equal(t, 2026, stats.Year)
		assert.Equal(t, 3, stats.Month)
		assert.Equal(t, 500.0, stats.Days["2026-03-10"].DueAmount)
	})

	t.Run("rejects_invalid_month", func(t *testing.T) {
		_, _, svc := newFeeFixture()

		for _, month := range []int{0, 13, -1} {
			_, err := svc.GetFeeCalendarStats(2026, month)
			require.Errorf(t, err, "month %d", month)
		}
	})

	t.Run("rejects_invalid_year", func(t *testing.T) {
		_, _, svc := newFeeFixture()

		_, err := svc.GetFeeCalendarStats(0, 3)

		require.Error(t, err)
	})
}

func TestBulkRemind(t *testing.T) {
	t.Run("groups_fees_per_student", func(t *testing.T) {
		_, emailService, svc := newFeeFixture()

		result, err := svc.BulkRemind([]uint{1, 2, 4})

		require.NoError(t, err)
		assert.Equal(t, 3, result.RequestedCount)
		assert.Equal(t, 3, result.SentCount)
		assert.Zero(t, result.FailedCount)

		require.Len(t, emailService.sent, 2, "one email per student")
		assert.Equal(t, "aarav@example.com", emailService.sent[0].toEmail)
		require.Len(t, emailService.sent[0].lines, 2)
		assert.Contains(t, emailService.sent[0].lines[0], "March Tuition")
		assert.Equal(t, 800.0, emailService.sent[0].totalDue)

		assert.Equal(t, "diya@example.com", emailService.sent[1].toEmail)
		assert.Equal(t, 200.0, emailService.sent[1].totalDue)
	})

	t.Run("skips_settled_fees", func(t *testing.T) {
		_, emailService, svc := newFeeFixture()

		result, err := svc.BulkRemind([]uint{1, 3})

		require.NoError(t, err)
		assert.Equal(t, 1, result.RequestedCount, "paid fee dropped")
		assert.Equal(t, 1, result.SentCount)
		require.Len(t, emailService.sent, 1)
		require.Len(t, emailService.sent[0].lines, 1)
	})

	t.Run("empty_ids_target_all_overdue", func(t *testing.T) {
		feeRepo, emailService, svc := newFeeFixture()
		feeRepo.overdue = []*models.FeeRecord{feeRepo.fees[1]}

		result, err := svc.BulkRemind(nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.RequestedCount)
		assert.Equal(t, 1, result.SentCount)
		require.Len(t, emailService.sent, 1)
	})

	t.Run("ward_without_email_reaches_guardian", func(t *testing.T) {
		guardianID := uint(42)
		feeRepo := &fakeFeeRepo{fees: map[uint]*models.FeeRecord{
			4: {ID: 4, StudentID: 7, Title: "Ward Lab Fee", Status: models.FeeStatusPending, FinalAmount: 200, DueDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		}}
		studentRepo := &fakeStudentRepo{students: map[uint]*models.Student{
			42: {ID: 42, Name: "Aarav Sharma", Email: "aarav@example.com"},
			7:  {ID: 7, Name: "Diya Sharma", GuardianID: &guardianID},
		}}
		emailService := &fakeEmailService{}
		centerRepo := &fakeCenterRepo{center: &models.Center{ID: 1, Name: "Nalanda Coaching Center"}}
		svc := NewFeeService(feeRepo, studentRepo, centerRepo, emailService, testLogger)

		result, err := svc.BulkRemind([]uint{4})

		require.NoError(t, err)
		assert.Equal(t, 1, result.SentCount)
		require.Len(t, emailService.sent, 1)
		assert.Equal(t, "aarav@example.com", emailService.sent[0].toEmail)
		assert.Equal(t, "Aarav Sharma", emailService.sent[0].toName)
	})

	t.Run("send_failure_counts_per_fee", func(t *testing.T) {
		_, emailService, svc := newFeeFixture()
		emailService.err = assert.AnError

		result, err := svc.BulkRemind([]uint{1, 2, 4})

		require.NoError(t, err, "delivery failures are reported in counts, not as errors")
		assert.Equal(t, 3, result.RequestedCount)
		assert.Zero(t, result.SentCount)
		assert.Equal(t, 3, result.FailedCount)
	})

	t.Run("nothing_payable_sends_nothing", func(t *testing.T) {
		_, emailService, svc := newFeeFixture()

		result, err := svc.BulkRemind([]uint{3})

		require.NoError(t, err)
		assert.Zero(t, result.RequestedCount)
		assert.Zero(t, result.SentCount)
		assert.Empty(t, emailService.sent)
	})
}

func TestListFees(t *testing.T) {
	t.Run("defaults_pagination", func(t *testing.T) {
		feeRepo, _, svc := newFeeFixture()

		_, _, err := svc.ListFees(nil, nil, nil, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, feeRepo.listPage)
		assert.Equal(t, 10, feeRepo.listLimit)
	})

	t.Run("caps_limit", func(t *testing.T) {
		feeRepo, _, svc := newFeeFixture()

		_, _, err := svc.ListFees(nil, nil, nil, 2, 500)

		require.NoError(t, err)
		assert.Equal(t, 2, feeRepo.listPage)
		assert.Equal(t, 10, feeRepo.listLimit)
	})

	t.Run("rejects_invalid_month", func(t *testing.T) {
		_, _, svc := newFeeFixture()
		month := 13

		_, _, err := svc.ListFees(nil, &month, nil, 1, 10)

		require.Error(t, err)
	})
}

func TestExportFeesToExcel(t *testing.T) {
	t.Run("writes_a_ledger_workbook", func(t *testing.T) {
		feeRepo, _, svc := newFeeFixture()
		feeRepo.listItems = []*response.FeeListItem{
			{ID: 1, StudentName: "Aarav Sharma", Title: "March Tuition", Status: "OVERDUE", FinalAmount: 500, Balance: 500, DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		}

		content, filename, err := svc.ExportFeesToExcel(nil, nil, nil)

		require.NoError(t, err)
		assert.NotEmpty(t, content)
		assert.True(t, strings.HasPrefix(filename, "fee_ledger_"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	})

	t.Run("rejects_invalid_month", func(t *testing.T) {
		_, _, svc := newFeeFixture()
		month := 0

		_, _, err := svc.ExportFeesToExcel(nil, &month, nil)

		require.Error(t, err)
	})
}

func TestSummarizeFees(t *testing.T) {
	fees := []*models.FeeRecord{
		{Status: models.FeeStatusOverdue, FinalAmount: 500},
		{Status: models.FeeStatusPending, FinalAmount: 300},
		{Status: models.FeeStatusPartiallyPaid, FinalAmount: 400, PaidAmount: 150},
		{Status: models.FeeStatusPaid, FinalAmount: 400, PaidAmount: 400},
		{Status: models.FeeStatusWaived, FinalAmount: 250},
		{Status: models.FeeStatus("MYSTERY"), FinalAmount: 999, PaidAmount: 10},
	}

	summary := summarizeFees(fees)

	assert.Equal(t, 1050.0, summary.TotalDue, "overdue 500 + pending 300 + partial 250")
	assert.Equal(t, 500.0, summary.TotalOverdue)
	assert.Equal(t, 560.0, summary.TotalPaid, "paid amounts count regardless of status")
	assert.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 2, summary.PaidCount)
}
