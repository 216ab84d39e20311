package ledger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// TransactionData carries the caller-supplied fields of a new
// transaction. The id is assigned by the ledger.
type TransactionData struct {
	Type     model.TransactionType
	Amount   decimal.Decimal
	Category model.Category
	Date     time.Time
	Notes    string
}

// AddTransaction assigns a fresh id, inserts the transaction and
// re-sorts the collection newest first. Input is assumed validated by
// the caller.
func (l *Ledger) AddTransaction(ctx context.Context, data TransactionData) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addTransactionLocked(ctx, data)
}

// addTransactionLocked is shared with the payment side effects, which
// already hold the ledger lock.
func (l *Ledger) addTransactionLocked(ctx context.Context, data TransactionData) (model.Transaction, error) {
	txn := model.Transaction{
		ID:       uuid.NewString(),
		Type:     data.Type,
		Amount:   data.Amount,
		Category: data.Category,
		Date:     data.Date,
		Notes:    data.Notes,
	}

	next := append(slices.Clone(l.transactions), txn)
	sortByDateDesc(next, func(t model.Transaction) time.Time { return t.Date })

	if err := l.store.Save(ctx, keyTransactions, next); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to save transactions: %w", err)
	}
	l.transactions = next
	return txn, nil
}

// UpdateTransaction replaces the transaction with a matching id and
// re-sorts the collection. An unknown id is silently a no-op.
func (l *Ledger) UpdateTransaction(ctx context.Context, txn model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.transactions, func(t model.Transaction) bool { return t.ID == txn.ID })
	if idx < 0 {
		return nil
	}

	next := slices.Clone(l.transactions)
	next[idx] = txn
	sortByDateDesc(next, func(t model.Transaction) time.Time { return t.Date })

	if err := l.store.Save(ctx, keyTransactions, next); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	l.transactions = next
	return nil
}

// DeleteTransaction removes the transaction with the given id. An
// unknown id is silently a no-op.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.transactions, func(t model.Transaction) bool { return t.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(l.transactions), idx, idx+1)

	if err := l.store.Save(ctx, keyTransactions, next); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	l.transactions = next
	return nil
}
