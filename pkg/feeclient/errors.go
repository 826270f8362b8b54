package feeclient

import (
	"errors"
	"fmt"
	"strings"
)

// errPrefix fronts every error message produced by the API client
const errPrefix = "feeapi: "

// ErrCheckoutCancelled signals that the user dismissed the gateway
// checkout. The payment flow treats it as a cooperative cancel: no
// retry, no local mutation.
var ErrCheckoutCancelled = errors.New("checkout cancelled")

// ErrPaymentInFlight signals that a payment flow is already running on
// this controller
var ErrPaymentInFlight = errors.New("payment already in flight")

// APIError is a failure reported by the fee service
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return errPrefix + e.Message
}

func clientErrorf(format string, args ...interface{}) error {
	return fmt.Errorf(errPrefix+format, args...)
}

// userMessage strips the API client's error prefix so internal wrapper
// text never reaches the user
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), errPrefix)
}
