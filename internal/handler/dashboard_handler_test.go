package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
)

type stubDashboardService struct {
	stats    *response.DashboardStatsResponse
	statsErr error
	gotMonth *int
	gotYear  *int

	payments    []*response.RecentPaymentItem
	total       int64
	paymentsErr error
}

func (s *stubDashboardService) GetDashboardStats(month, year *int) (*response.DashboardStatsResponse, error) {
	s.gotMonth, s.gotYear = month, year
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return s.stats, nil
}

func (s *stubDashboardService) GetRecentPayments(page, limit int) ([]*response.RecentPaymentItem, int64, error) {
	if s.paymentsErr != nil {
		return nil, 0, s.paymentsErr
	}
	return s.payments, s.total, nil
}

func newDashboardRouter(svc *stubDashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDashboardHandler(svc, testLogger)

	dashboard := router.Group("/api/v1/dashboard")
	{
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/payments", h.GetRecentPayments)
	}
	return router
}

func TestGetDashboardStatsHandler(t *testing.T) {
	t.Run("returns_the_stats_block", func(t *testing.T) {
		svc := &stubDashboardService{stats: &response.DashboardStatsResponse{
			TotalStudents:    120,
			TotalCollected:   450000,
			TotalOutstanding: 86500,
			OverdueCount:     9,
		}}
		router := newDashboardRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/dashboard/stats", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotMonth)
		assert.Nil(t, svc.gotYear)

		envelope := decodeEnvelope(t, w)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 120.0, data["total_students"])
		assert.Equal(t, 450000.0, data["total_collected"])
	})

	t.Run("forwards_month_and_year", func(t *testing.T) {
		svc := &stubDashboardService{stats: &response.DashboardStatsResponse{}}
		router := newDashboardRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/dashboard/stats?month=3&year=2026", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotMonth)
		assert.Equal(t, 3, *svc.gotMonth)
		require.NotNil(t, svc.gotYear)
		assert.Equal(t, 2026, *svc.gotYear)
	})

	t.Run("rejects_bad_month_format", func(t *testing.T) {
		router := newDashboardRouter(&stubDashboardService{})

		w := performRequest(router, http.MethodGet, "/api/v1/dashboard/stats?month=x", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetRecentPaymentsHandler(t *testing.T) {
	svc := &stubDashboardService{
		payments: []*response.RecentPaymentItem{
			{ID: 93, StudentName: "Aarav Sharma", FeeTitle: "March Tuition", Amount: 4000, ReceiptNumber: "RCPT-8c61e2d4"},
		},
		total: 1,
	}
	router := newDashboardRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/dashboard/payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
}
