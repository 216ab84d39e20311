package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableStatus tracks whether a payable has been fully paid off.
type PayableStatus string

const (
	// PayableDue means the recorded payments do not yet cover the amount.
	PayableDue PayableStatus = "due"
	// PayablePaid means the recorded payments cover the full amount.
	PayablePaid PayableStatus = "paid"
)

// PaymentMade is a single repayment recorded against a payable. Owned
// by its parent payable the same way Payment is owned by a receivable.
type PaymentMade struct {
	Date   time.Time       `json:"date"`
	ID     string          `json:"id"`
	Notes  string          `json:"notes,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Payable is money the user owes to a third party, tracked until fully
// paid. It mirrors Receivable with the due/paid status pair.
type Payable struct {
	Date         time.Time       `json:"date"`
	ID           string          `json:"id"`
	PersonName   string          `json:"personName"`
	Notes        string          `json:"notes,omitempty"`
	Status       PayableStatus   `json:"status"`
	PaymentsMade []PaymentMade   `json:"paymentsMade"`
	Amount       decimal.Decimal `json:"amount"`
}

// PaidAmount returns the sum of all recorded payments.
func (p *Payable) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, pm := range p.PaymentsMade {
		total = total.Add(pm.Amount)
	}
	return total
}

// Remaining returns the amount still due.
func (p *Payable) Remaining() decimal.Decimal {
	return p.Amount.Sub(p.PaidAmount())
}

// RefreshStatus recomputes Status from the recorded payments: paid iff
// the payments cover the amount.
func (p *Payable) RefreshStatus() {
	if p.PaidAmount().GreaterThanOrEqual(p.Amount) {
		p.Status = PayablePaid
	} else {
		p.Status = PayableDue
	}
}
