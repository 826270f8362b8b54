// Package feeclient is a client SDK for the fee service: an HTTP client
// for its REST API and screen controllers that hold the my-fees,
// dashboard and calendar view state.
package feeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the fee service REST API. It implements
// FeeService and PaymentService.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ FeeService     = (*Client)(nil)
	_ PaymentService = (*Client)(nil)
)

// NewClient creates an API client against the given base URL
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewClientWithHTTPClient creates an API client using a caller-supplied
// http.Client
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// apiEnvelope is the service's standard response envelope
type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do sends one request and decodes the envelope's data into out. A nil
// out skips data decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return clientErrorf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return clientErrorf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return clientErrorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return clientErrorf("read response: %v", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return clientErrorf("decode response: %v", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if len(envelope.Data) == 0 {
		return clientErrorf("empty response data")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return clientErrorf("decode response data: %v", err)
	}

	return nil
}

// GetMyFees fetches the subject's fee records and summary
func (c *Client) GetMyFees(ctx context.Context, studentID uint) (*MyFees, error) {
	var out MyFees
	path := fmt.Sprintf("/api/v1/fees/my/%d", studentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummary fetches the center-wide fee summary
func (c *Client) GetSummary(ctx context.Context) (*FeeSummary, error) {
	var out FeeSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/fees/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFeeCalendarStats fetches per-day due and collected aggregates for
// one calendar month
func (c *Client) GetFeeCalendarStats(ctx context.Context, year, month int) (*CalendarStats, error) {
	var out CalendarStats
	path := fmt.Sprintf("/api/v1/fees/calendar?year=%d&month=%d", year, month)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type bulkRemindRequest struct {
	FeeIDs []uint `json:"fee_ids,omitempty"`
}

// BulkRemind asks the service to send payment reminders for the given
// fees, or for every overdue fee when feeIDs is empty
func (c *Client) BulkRemind(ctx context.Context, feeIDs []uint) (*RemindResult, error) {
	var out RemindResult
	body := bulkRemindRequest{FeeIDs: feeIDs}
	if err := c.do(ctx, http.MethodPost, "/api/v1/fees/remind", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createOrderRequest struct {
	StudentID uint `json:"student_id"`
	FeeID     uint `json:"fee_id"`
}

// CreateOrder requests a gateway order covering the full outstanding
// balance of one fee record
func (c *Client) CreateOrder(ctx context.Context, studentID, feeID uint) (*Order, error) {
	var out Order
	body := createOrderRequest{StudentID: studentID, FeeID: feeID}
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments/order", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createMultiOrderRequest struct {
	StudentID uint     `json:"student_id"`
	FeeIDs    []uint   `json:"fee_ids"`
	Amount    *float64 `json:"amount,omitempty"`
}

// CreateMultiOrder requests one combined gateway order across several
// fee records, optionally capped at a custom amount
func (c *Client) CreateMultiOrder(ctx context.Context, studentID uint, feeIDs []uint, amount *float64) (*Order, error) {
	var out Order
	body := createMultiOrderRequest{StudentID: studentID, FeeIDs: feeIDs, Amount: amount}
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments/multi-order", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type verifyPaymentRequest struct {
	StudentID uint   `json:"student_id"`
	FeeID     uint   `json:"fee_id,omitempty"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// VerifyPayment submits a checkout result for server-side verification
// of a single-fee order
func (c *Client) VerifyPayment(ctx context.Context, studentID, feeID uint, orderID, paymentID, signature string) (*Receipt, error) {
	var out Receipt
	body := verifyPaymentRequest{
		StudentID: studentID,
		FeeID:     feeID,
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments/verify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyMultiPayment submits a checkout result for server-side
// verification of a combined order
func (c *Client) VerifyMultiPayment(ctx context.Context, studentID uint, orderID, paymentID, signature string) error {
	body := verifyPaymentRequest{
		StudentID: studentID,
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/payments/verify-multi", body, nil)
}
