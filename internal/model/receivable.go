package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableStatus tracks whether a receivable has been fully paid off.
type ReceivableStatus string

const (
	// ReceivablePending means the recorded payments do not yet cover the amount.
	ReceivablePending ReceivableStatus = "pending"
	// ReceivableReceived means the recorded payments cover the full amount.
	ReceivableReceived ReceivableStatus = "received"
)

// Payment is a single repayment recorded against a receivable. Payments
// are owned by their parent receivable: appended, never mutated or
// removed individually.
type Payment struct {
	Date   time.Time       `json:"date"`
	ID     string          `json:"id"`
	Notes  string          `json:"notes,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Receivable is money owed to the user by a third party, tracked until
// fully paid.
type Receivable struct {
	Date       time.Time        `json:"date"`
	ID         string           `json:"id"`
	PersonName string           `json:"personName"`
	Notes      string           `json:"notes,omitempty"`
	Status     ReceivableStatus `json:"status"`
	Payments   []Payment        `json:"payments"`
	Amount     decimal.Decimal  `json:"amount"`
}

// PaidAmount returns the sum of all recorded payments.
func (r *Receivable) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining returns the amount still owed.
func (r *Receivable) Remaining() decimal.Decimal {
	return r.Amount.Sub(r.PaidAmount())
}

// RefreshStatus recomputes Status from the recorded payments. Status is
// always derived, never set directly: received iff the payments cover
// the amount.
func (r *Receivable) RefreshStatus() {
	if r.PaidAmount().GreaterThanOrEqual(r.Amount) {
		r.Status = ReceivableReceived
	} else {
		r.Status = ReceivablePending
	}
}
