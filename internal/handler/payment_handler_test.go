package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
)

type stubPaymentService struct {
	order    *response.OrderResponse
	orderErr error

	receipt   *response.ReceiptResponse
	verifyErr error

	verifyMultiErr error

	gotStudentID uint
	gotFeeID     uint
	gotFeeIDs    []uint
	gotAmount    *float64
	gotOrderID   string
	gotSignature string
}

func (s *stubPaymentService) CreateOrder(studentID, feeID uint) (*response.OrderResponse, error) {
	s.gotStudentID, s.gotFeeID = studentID, feeID
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return s.order, nil
}

func (s *stubPaymentService) CreateMultiOrder(studentID uint, feeIDs []uint, customAmount *float64) (*response.OrderResponse, error) {
	s.gotStudentID, s.gotFeeIDs, s.gotAmount = studentID, feeIDs, customAmount
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return s.order, nil
}

func (s *stubPaymentService) VerifyPayment(studentID, feeID uint, orderID, paymentID, signature string) (*response.ReceiptResponse, error) {
	s.gotStudentID, s.gotFeeID = studentID, feeID
	s.gotOrderID, s.gotSignature = orderID, signature
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.receipt, nil
}

func (s *stubPaymentService) VerifyMultiPayment(studentID uint, orderID, paymentID, signature string) error {
	s.gotStudentID = studentID
	s.gotOrderID, s.gotSignature = orderID, signature
	return s.verifyMultiErr
}

func newPaymentRouter(svc *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPaymentHandler(svc, testLogger)

	payments := router.Group("/api/v1/payments")
	{
		payments.POST("/order", h.CreateOrder)
		payments.POST("/multi-order", h.CreateMultiOrder)
		payments.POST("/verify", h.VerifyPayment)
		payments.POST("/verify-multi", h.VerifyMultiPayment)
	}
	return router
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("creates_an_order", func(t *testing.T) {
		svc := &stubPaymentService{order: &response.OrderResponse{
			OrderID:    "order_abc123",
			Amount:     50000,
			Currency:   "INR",
			GatewayKey: "rzp_test_key",
		}}
		router := newPaymentRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/payments/order", bytes.NewBufferString(`{"student_id":42,"fee_id":1}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), svc.gotStudentID)
		assert.Equal(t, uint(1), svc.gotFeeID)

		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "order_abc123", data["order_id"])
		assert.Equal(t, "rzp_test_key", data["gateway_key"])
	})

	t.Run("requires_fee_id", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		w := performRequest(router, http.MethodPost, "/api/v1/payments/order", bytes.NewBufferString(`{"student_id":42}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service_rejection_is_a_bad_request", func(t *testing.T) {
		svc := &stubPaymentService{orderErr: assert.AnError}
		router := newPaymentRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/payments/order", bytes.NewBufferString(`{"student_id":42,"fee_id":3}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decodeEnvelope(t, w).Success)
	})
}

func TestCreateMultiOrderHandler(t *testing.T) {
	t.Run("forwards_ids_and_amount", func(t *testing.T) {
		svc := &stubPaymentService{order: &response.OrderResponse{OrderID: "order_multi", Amount: 40000}}
		router := newPaymentRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/payments/multi-order", bytes.NewBufferString(`{"student_id":42,"fee_ids":[1,2],"amount":400}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uint{1, 2}, svc.gotFeeIDs)
		require.NotNil(t, svc.gotAmount)
		assert.Equal(t, 400.0, *svc.gotAmount)
	})

	t.Run("amount_is_optional", func(t *testing.T) {
		svc := &stubPaymentService{order: &response.OrderResponse{OrderID: "order_multi", Amount: 80000}}
		router := newPaymentRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/v1/payments/multi-order", bytes.NewBufferString(`{"student_id":42,"fee_ids":[1,2]}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotAmount)
	})

	t.Run("rejects_empty_fee_ids", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		w := performRequest(router, http.MethodPost, "/api/v1/payments/multi-order", bytes.NewBufferString(`{"student_id":42,"fee_ids":[]}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVerifyPaymentHandler(t *testing.T) {
	t.Run("returns_the_receipt", func(t *testing.T) {
		svc := &stubPaymentService{receipt: &response.ReceiptResponse{
			ReceiptNumber: "RCPT-1a2b3c4d",
			FeeID:         1,
			AmountPaid:    500,
		}}
		router := newPaymentRouter(svc)

		body := `{"student_id":42,"fee_id":1,"order_id":"order_abc123","payment_id":"pay_xyz","signature":"sig"}`
		w := performRequest(router, http.MethodPost, "/api/v1/payments/verify", bytes.NewBufferString(body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "order_abc123", svc.gotOrderID)
		assert.Equal(t, "sig", svc.gotSignature)

		envelope := decodeEnvelope(t, w)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "RCPT-1a2b3c4d", data["receipt_number"])
	})

	t.Run("requires_signature", func(t *testing.T) {
		router := newPaymentRouter(&stubPaymentService{})

		body := `{"student_id":42,"fee_id":1,"order_id":"order_abc123","payment_id":"pay_xyz"}`
		w := performRequest(router, http.MethodPost, "/api/v1/payments/verify", bytes.NewBufferString(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failed_verification_is_a_bad_request", func(t *testing.T) {
		svc := &stubPaymentService{verifyErr: assert.AnError}
		router := newPaymentRouter(svc)

		body := `{"student_id":42,"fee_id":1,"order_id":"order_abc123","payment_id":"pay_xyz","signature":"bad"}`
		w := performRequest(router, http.MethodPost, "/api/v1/payments/verify", bytes.NewBufferString(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVerifyMultiPaymentHandler(t *testing.T) {
	t.Run("success_carries_no_data_payload", func(t *testing.T) {
		svc := &stubPaymentService{}
		router := newPaymentRouter(svc)

		body := `{"student_id":42,"order_id":"order_multi","payment_id":"pay_xyz","signature":"sig"}`
		w := performRequest(router, http.MethodPost, "/api/v1/payments/verify-multi", bytes.NewBufferString(body))

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
		assert.Nil(t, envelope.Data)
	})

	t.Run("failed_verification_is_a_bad_request", func(t *testing.T) {
		svc := &stubPaymentService{verifyMultiErr: assert.AnError}
		router := newPaymentRouter(svc)

		body := `{"student_id":42,"order_id":"order_multi","payment_id":"pay_xyz","signature":"bad"}`
		w := performRequest(router, http.MethodPost, "/api/v1/payments/verify-multi", bytes.NewBufferString(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
