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

// PayableData carries the caller-supplied fields of a new payable.
type PayableData struct {
	PersonName string
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
}

// AddPayable creates a due payable with an empty payment list and
// re-sorts the collection newest first.
func (l *Ledger) AddPayable(ctx context.Context, data PayableData) (model.Payable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pay := model.Payable{
		ID:           uuid.NewString(),
		PersonName:   data.PersonName,
		Amount:       data.Amount,
		Date:         data.Date,
		Notes:        data.Notes,
		Status:       model.PayableDue,
		PaymentsMade: []model.PaymentMade{},
	}

	next := append(clonePayables(l.payables), pay)
	sortByDateDesc(next, func(p model.Payable) time.Time { return p.Date })

	if err := l.store.Save(ctx, keyPayables, next); err != nil {
		return model.Payable{}, fmt.Errorf("failed to save payables: %w", err)
	}
	l.payables = next
	return pay, nil
}

// UpdatePayable replaces the payable with a matching id and re-sorts
// the collection. An unknown id is silently a no-op.
func (l *Ledger) UpdatePayable(ctx context.Context, pay model.Payable) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.payables, func(p model.Payable) bool { return p.ID == pay.ID })
	if idx < 0 {
		return nil
	}

	next := clonePayables(l.payables)
	next[idx] = pay
	sortByDateDesc(next, func(p model.Payable) time.Time { return p.Date })

	if err := l.store.Save(ctx, keyPayables, next); err != nil {
		return fmt.Errorf("failed to save payables: %w", err)
	}
	l.payables = next
	return nil
}

// DeletePayable removes the payable with the given id. An unknown id is
// silently a no-op.
func (l *Ledger) DeletePayable(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.payables, func(p model.Payable) bool { return p.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(clonePayables(l.payables), idx, idx+1)

	if err := l.store.Save(ctx, keyPayables, next); err != nil {
		return fmt.Errorf("failed to save payables: %w", err)
	}
	l.payables = next
	return nil
}

// AddPaymentMade appends a payment to the payable with the given id,
// recomputes its status and posts a matching expense transaction
// categorized under "other" (or the built-in fallback when that
// category no longer exists). An unknown id is silently a no-op and
// returns nil. The amount must be positive and no larger than the
// remaining balance.
func (l *Ledger) AddPaymentMade(ctx context.Context, payableID string, data PaymentData) (*model.Payable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.payables, func(p model.Payable) bool { return p.ID == payableID })
	if idx < 0 {
		slog.Debug("payment against unknown payable", "id", payableID)
		return nil, nil
	}

	next := clonePayables(l.payables)
	pay := &next[idx]

	if !data.Amount.IsPositive() {
		return nil, ErrPaymentNotPositive
	}
	if data.Amount.GreaterThan(pay.Remaining()) {
		return nil, fmt.Errorf("%w: %s remaining on %s", ErrPaymentExceedsRemaining, pay.Remaining(), pay.PersonName)
	}

	pay.PaymentsMade = append(pay.PaymentsMade, model.PaymentMade{
		ID:     uuid.NewString(),
		Amount: data.Amount,
		Date:   data.Date,
		Notes:  data.Notes,
	})
	pay.RefreshStatus()
	sortByDateDesc(next, func(p model.Payable) time.Time { return p.Date })

	if err := l.store.Save(ctx, keyPayables, next); err != nil {
		return nil, fmt.Errorf("failed to save payables: %w", err)
	}
	l.payables = next

	idx = slices.IndexFunc(l.payables, func(p model.Payable) bool { return p.ID == payableID })
	updated := l.payables[idx]

	category, ok := l.categoryByIDLocked("other")
	if !ok {
		category = model.FallbackCategory()
	}

	if _, err := l.addTransactionLocked(ctx, TransactionData{
		Type:     model.TransactionExpense,
		Amount:   data.Amount,
		Category: category,
		Date:     data.Date,
		Notes:    paymentNotes("Payment to", updated.PersonName, data.Notes),
	}); err != nil {
		return nil, fmt.Errorf("payment recorded but expense transaction not saved: %w", err)
	}

	snapshot := updated
	snapshot.PaymentsMade = slices.Clone(updated.PaymentsMade)
	return &snapshot, nil
}
