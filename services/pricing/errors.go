package pricing

import "fmt"

// EmptyCartMessage is the exact business message the pricing engine returns
// when there is nothing to price. The engine signals this on a success:false
// body, so the message is part of the wire contract.
const EmptyCartMessage = "No items found in the cart."

// emptyCartCode is an optional structured marker newer engine releases send
// alongside the message, so clients need not rely on string matching forever.
const emptyCartCode = "CART_EMPTY"

// EmptyCartError reports the business-valid "nothing to price" outcome.
// It is deliberately not a PricingError so callers can route it to an
// empty-cart state instead of a failure state.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return EmptyCartMessage
}

// PricingError reports a remote failure or malformed response from the
// pricing engine.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TimeoutError is a PricingError raised when the engine call exceeds the
// caller-supplied deadline. It unwraps to its PricingError so errors.As
// treats it as one.
type TimeoutError struct {
	PricingError
}

func (e *TimeoutError) Unwrap() error {
	return &e.PricingError
}

func newTimeoutError(msg string) *TimeoutError {
	return &TimeoutError{PricingError{Code: "timeout", Message: msg}}
}
