package ledger

import "errors"

// Payment validation errors. Referential misses (unknown ids) are
// deliberately silent no-ops, not errors; only payment amounts are
// validated at this boundary.
var (
	// ErrPaymentNotPositive is returned when a payment amount is zero or negative.
	ErrPaymentNotPositive = errors.New("payment amount must be positive")
	// ErrPaymentExceedsRemaining is returned when a payment is larger than the remaining balance.
	ErrPaymentExceedsRemaining = errors.New("payment amount exceeds remaining balance")
)
