package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// ReceivableData carries the caller-supplied fields of a new
// receivable. Status and the payment list are initialized by the
// ledger.
type ReceivableData struct {
	PersonName string
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
}

// PaymentData carries the caller-supplied fields of a payment recorded
// against a receivable or payable.
type PaymentData struct {
	Amount decimal.Decimal
	Date   time.Time
	Notes  string
}

// AddReceivable creates a pending receivable with an empty payment list
// and re-sorts the collection newest first.
func (l *Ledger) AddReceivable(ctx context.Context, data ReceivableData) (model.Receivable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := model.Receivable{
		ID:         uuid.NewString(),
		PersonName: data.PersonName,
		Amount:     data.Amount,
		Date:       data.Date,
		Notes:      data.Notes,
		Status:     model.ReceivablePending,
		Payments:   []model.Payment{},
	}

	next := append(cloneReceivables(l.receivables), rec)
	sortByDateDesc(next, func(r model.Receivable) time.Time { return r.Date })

	if err := l.store.Save(ctx, keyReceivables, next); err != nil {
		return model.Receivable{}, fmt.Errorf("failed to save receivables: %w", err)
	}
	l.receivables = next
	return rec, nil
}

// UpdateReceivable replaces the receivable with a matching id and
// re-sorts the collection. An unknown id is silently a no-op.
func (l *Ledger) UpdateReceivable(ctx context.Context, rec model.Receivable) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.receivables, func(r model.Receivable) bool { return r.ID == rec.ID })
	if idx < 0 {
		return nil
	}

	next := cloneReceivables(l.receivables)
	next[idx] = rec
	sortByDateDesc(next, func(r model.Receivable) time.Time { return r.Date })

	if err := l.store.Save(ctx, keyReceivables, next); err != nil {
		return fmt.Errorf("failed to save receivables: %w", err)
	}
	l.receivables = next
	return nil
}

// DeleteReceivable removes the receivable with the given id. An unknown
// id is silently a no-op.
func (l *Ledger) DeleteReceivable(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.receivables, func(r model.Receivable) bool { return r.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(cloneReceivables(l.receivables), idx, idx+1)

	if err := l.store.Save(ctx, keyReceivables, next); err != nil {
		return fmt.Errorf("failed to save receivables: %w", err)
	}
	l.receivables = next
	return nil
}

// AddPayment appends a payment to the receivable with the given id,
// recomputes its status and posts a matching income transaction dated
// at the payment's date. An unknown id is silently a no-op and returns
// nil. The amount must be positive and no larger than the remaining
// balance.
//
// The receivable is persisted before the income transaction, so a
// storage failure between the two leaves the payment recorded without
// its transaction; the returned error surfaces that.
func (l *Ledger) AddPayment(ctx context.Context, receivableID string, data PaymentData) (*model.Receivable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.receivables, func(r model.Receivable) bool { return r.ID == receivableID })
	if idx < 0 {
		slog.Debug("payment against unknown receivable", "id", receivableID)
		return nil, nil
	}

	next := cloneReceivables(l.receivables)
	rec := &next[idx]

	if !data.Amount.IsPositive() {
		return nil, ErrPaymentNotPositive
	}
	if data.Amount.GreaterThan(rec.Remaining()) {
		return nil, fmt.Errorf("%w: %s remaining on %s", ErrPaymentExceedsRemaining, rec.Remaining(), rec.PersonName)
	}

	rec.Payments = append(rec.Payments, model.Payment{
		ID:     uuid.NewString(),
		Amount: data.Amount,
		Date:   data.Date,
		Notes:  data.Notes,
	})
	rec.RefreshStatus()
	sortByDateDesc(next, func(r model.Receivable) time.Time { return r.Date })

	if err := l.store.Save(ctx, keyReceivables, next); err != nil {
		return nil, fmt.Errorf("failed to save receivables: %w", err)
	}
	l.receivables = next

	// Recompute the index: sorting may have moved the receivable.
	idx = slices.IndexFunc(l.receivables, func(r model.Receivable) bool { return r.ID == receivableID })
	updated := l.receivables[idx]

	if _, err := l.addTransactionLocked(ctx, TransactionData{
		Type:     model.TransactionIncome,
		Amount:   data.Amount,
		Category: model.IncomeCategory(),
		Date:     data.Date,
		Notes:    paymentNotes("Payment from", updated.PersonName, data.Notes),
	}); err != nil {
		return nil, fmt.Errorf("payment recorded but income transaction not saved: %w", err)
	}

	snapshot := updated
	snapshot.Payments = slices.Clone(updated.Payments)
	return &snapshot, nil
}

// paymentNotes synthesizes the notes of a payment-posted transaction:
// "Payment from Ali" or "Payment from Ali - first installment".
func paymentNotes(prefix, personName, notes string) string {
	if notes == "" {
		return fmt.Sprintf("%s %s", prefix, personName)
	}
	return fmt.Sprintf("%s %s - %s", prefix, personName, notes)
}
