package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// Totals are the derived aggregates over the base collections. They are
// recomputed on every call and never persisted, so they cannot drift
// out of sync with the underlying data.
type Totals struct {
	Income             decimal.Decimal
	Expense            decimal.Decimal
	Balance            decimal.Decimal
	PendingReceivables decimal.Decimal
	DuePayables        decimal.Decimal
}

// Totals computes the aggregate view of the ledger: income and expense
// sums, their balance, and the outstanding remainder of all pending
// receivables and due payables.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := Totals{
		Income:             decimal.Zero,
		Expense:            decimal.Zero,
		PendingReceivables: decimal.Zero,
		DuePayables:        decimal.Zero,
	}

	for _, txn := range l.transactions {
		switch txn.Type {
		case model.TransactionIncome:
			t.Income = t.Income.Add(txn.Amount)
		case model.TransactionExpense:
			t.Expense = t.Expense.Add(txn.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)

	for i := range l.receivables {
		if l.receivables[i].Status == model.ReceivablePending {
			t.PendingReceivables = t.PendingReceivables.Add(l.receivables[i].Remaining())
		}
	}
	for i := range l.payables {
		if l.payables[i].Status == model.PayableDue {
			t.DuePayables = t.DuePayables.Add(l.payables[i].Remaining())
		}
	}

	return t
}
