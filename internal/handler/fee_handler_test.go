package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

var testLogger = logger.NewLogger("error", "text")

type stubFeeService struct {
	myFees    *response.MyFeesResponse
	myFeesErr error

	summary    *response.FeeSummaryResponse
	summaryErr error

	calendar    *response.CalendarStatsResponse
	calendarErr error

	remind    *response.RemindResultResponse
	remindErr error
	remindIDs [][]uint

	listItems []*response.FeeListItem
	listTotal int64
	listErr   error
	gotStatus *string
	gotMonth  *int
	gotYear   *int
	gotPage   int
	gotLimit  int

	exportContent []byte
	exportName    string
	exportErr     error
}

func (s *stubFeeService) GetMyFees(studentID uint) (*response.MyFeesResponse, error) {
	if s.myFeesErr != nil {
		return nil, s.myFeesErr
	}
	return s.myFees, nil
}

func (s *stubFeeService) GetFeeSummary(studentID *uint) (*response.FeeSummaryResponse, error) {
	if s.summaryErr != nil {
		return nil, s.summaryErr
	}
	return s.summary, nil
}

func (s *stubFeeService) GetFeeCalendarStats(year, month int) (*response.CalendarStatsResponse, error) {
	if s.calendarErr != nil {
		return nil, s.calendarErr
	}
	if s.calendar != nil {
		return s.calendar, nil
	}
	return &response.CalendarStatsResponse{Year: year, Month: month}, nil
}

func (s *stubFeeService) BulkRemind(feeIDs []uint) (*response.RemindResultResponse, error) {
	s.remindIDs = append(s.remindIDs, feeIDs)
	if s.remindErr != nil {
		return nil, s.remindErr
	}
	return s.remind, nil
}

func (s *stubFeeService) ListFees(status *string, month, year *int, page, limit int) ([]*response.FeeListItem, int64, error) {
	s.gotStatus, s.gotMonth, s.gotYear = status, month, year
	s.gotPage, s.gotLimit = page, limit
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.listItems, s.listTotal, nil
}

func (s *stubFeeService) ExportFeesToExcel(status *string, month, year *int) ([]byte, string, error) {
	if s.exportErr != nil {
		return nil, "", s.exportErr
	}
	return s.exportContent, s.exportName, nil
}

func newFeeRouter(svc *stubFeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewFeeHandler(svc, testLogger)

	fees := router.Group("/api/v1/fees")
	{
		fees.GET("", h.ListFees)
		fees.GET("/my/:student_id", h.GetMyFees)
		fees.GET("/summary", h.GetFeeSummary)
		fees.GET("/calendar", h.GetFeeCalendar)
		fees.GET("/export", h.ExportFees)
		fees.POST("/remind", h.BulkRemind)
	}
	return router
}

func performRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestGetMyFeesHandler(t *testing.T) {
	t.Run("returns_records_and_summary", func(t *testing.T) {
		svc := &stubFeeService{myFees: &response.MyFeesResponse{
			Records: []response.FeeItem{
				{ID: 1, Title: "March Tuition", Status: "OVERDUE", Balance: 500},
			},
			Summary: &response.FeeSummaryResponse{TotalDue: 500},
		}}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/fees/my/42", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)

		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		records, ok := data["records"].([]interface{})
		require.True(t, ok)
		assert.Len(t, records, 1)
	})

	t.Run("rejects_non_numeric_id", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		w := performRequest(router, http.MethodGet, "/api/v1/fees/my/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decodeEnvelope(t, w).Success)
	})

	t.Run("service_failure_returns_500", func(t *testing.T) {
		svc := &stubFeeService{myFeesErr: assert.AnError}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/fees/my/42", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetFeeSummaryHandler(t *testing.T) {
	t.Run("center_wide_by_default", func(t *testing.T) {
		svc := &stubFeeService{summary: &response.FeeSummaryResponse{TotalDue: 12500}}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/fees/summary", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 12500.0, data["total_due"])
	})

	t.Run("rejects_bad_student_filter", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		w := performRequest(router, http.MethodGet, "/api/v1/fees/summary?student_id=oops", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFeeCalendarHandler(t *testing.T) {
	t.Run("echoes_cursor", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		w := performRequest(router, http.MethodGet, "/api/v1/fees/calendar?year=2026&month=3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 2026.0, data["year"])
		assert.Equal(t, 3.0, data["month"])
	})

	t.Run("requires_year", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		w := performRequest(router, http.MethodGet, "/api/v1/fees/calendar?month=3", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects_out_of_range_month", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		for _, month := range []string{"0", "13", "x"} {
			w := performRequest(router, http.MethodGet, "/api/v1/fees/calendar?year=2026&month="+month, nil)
			assert.Equalf(t, http.StatusBadRequest, w.Code, "month %s", month)
		}
	})
}

func TestBulkRemindHandler(t *testing.T) {
	t.Run("forwards_fee_ids", func(t *testing.T) {
		svc := &stubFeeService{remind: &response.RemindResultResponse{RequestedCount: 2, SentCount: 2}}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/fees/remind", bytes.NewBufferString(`{"fee_ids":[7,9]}`))

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.remindIDs, 1)
		assert.Equal(t, []uint{7, 9}, svc.remindIDs[0])
	})

	t.Run("empty_body_reminds_all_overdue", func(t *testing.T) {
		svc := &stubFeeService{remind: &response.RemindResultResponse{}}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/fees/remind", bytes.NewBufferString(`{}`))

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.remindIDs, 1)
		assert.Nil(t, svc.remindIDs[0])
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		svc := &stubFeeService{}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/fees/remind", bytes.NewBufferString(`{"fee_ids":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.remindIDs)
	})
}

func TestListFeesHandler(t *testing.T) {
	t.Run("propagates_filters_and_pagination", func(t *testing.T) {
		svc := &stubFeeService{
			listItems: []*response.FeeListItem{
				{ID: 1, StudentName: "Aarav Sharma", Title: "March Tuition", Status: "OVERDUE", Balance: 500, DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
			},
			listTotal: 57,
		}
		router := newFeeRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/fees?status=OVERDUE&month=3&year=2026&page=2&limit=10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotStatus)
		assert.Equal(t, "OVERDUE", *svc.gotStatus)
		require.NotNil(t, svc.gotMonth)
		assert.Equal(t, 3, *svc.gotMonth)
		require.NotNil(t, svc.gotYear)
		assert.Equal(t, 2026, *svc.gotYear)
		assert.Equal(t, 2, svc.gotPage)
		assert.Equal(t, 10, svc.gotLimit)

		var envelope utils.PaginatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, 2, envelope.Meta.Page)
		assert.Equal(t, int64(57), envelope.Meta.Total)
		assert.Equal(t, 6, envelope.Meta.TotalPages)
	})

	t.Run("rejects_bad_month", func(t *testing.T) {
		router := newFeeRouter(&stubFeeService{})

		w := performRequest(router, http.MethodGet, "/api/v1/fees?month=x", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportFeesHandler(t *testing.T) {
	svc := &stubFeeService{
		exportContent: []byte("workbook-bytes"),
		exportName:    "fee_ledger_20260310_120000.xlsx",
	}
	router := newFeeRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/fees/export?status=OVERDUE", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=fee_ledger_20260310_120000.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(t, "workbook-bytes", w.Body.String())
}
