package feeclient

import (
	"context"
)

// FeeService is the fee-query collaborator consumed by the controllers
type FeeService interface {
	GetMyFees(ctx context.Context, studentID uint) (*MyFees, error)
	GetSummary(ctx context.Context) (*FeeSummary, error)
	GetFeeCalendarStats(ctx context.Context, year, month int) (*CalendarStats, error)
	BulkRemind(ctx context.Context, feeIDs []uint) (*RemindResult, error)
}

// PaymentService is the payment collaborator consumed by the controllers
type PaymentService interface {
	CreateOrder(ctx context.Context, studentID, feeID uint) (*Order, error)
	CreateMultiOrder(ctx context.Context, studentID uint, feeIDs []uint, amount *float64) (*Order, error)
	VerifyPayment(ctx context.Context, studentID, feeID uint, orderID, paymentID, signature string) (*Receipt, error)
	VerifyMultiPayment(ctx context.Context, studentID uint, orderID, paymentID, signature string) error
}

// Checkout drives the external gateway checkout UI. Open blocks until
// the user completes or abandons the payment; cancellation surfaces as
// a non-nil error, conventionally ErrCheckoutCancelled.
type Checkout interface {
	Open(ctx context.Context, opts CheckoutOptions) (*CheckoutResult, error)
}

// CheckoutFunc adapts a function to the Checkout interface
type CheckoutFunc func(ctx context.Context, opts CheckoutOptions) (*CheckoutResult, error)

// Open calls f
func (f CheckoutFunc) Open(ctx context.Context, opts CheckoutOptions) (*CheckoutResult, error) {
	return f(ctx, opts)
}
