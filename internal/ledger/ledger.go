// Package ledger implements the store that owns all persisted financial
// state: transactions, categories, settings, receivables and payables.
// It is the single place where cross-entity consistency rules are
// enforced, and it derives all aggregate totals on demand instead of
// persisting them.
package ledger

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/zunaidhosse/fare/internal/model"
	"github.com/zunaidhosse/fare/internal/storage"
)

// Persisted collection keys. Each collection is read and written
// independently through the storage port.
const (
	keyTransactions = "transactions"
	keyCategories   = "categories"
	keySettings     = "settings"
	keyReceivables  = "receivables"
	keyPayables     = "payables"
)

// Ledger holds the five persisted collections in memory and writes the
// mutated collection back through the storage port after every change.
// A mutation persists its candidate collection before committing it to
// memory, so a failed write leaves the in-memory state untouched.
type Ledger struct {
	store        storage.Store
	transactions []model.Transaction
	categories   []model.Category
	receivables  []model.Receivable
	payables     []model.Payable
	settings     model.Settings
	mu           sync.Mutex
}

// Open loads every collection from the store, applying its documented
// default where nothing has been persisted yet.
func Open(ctx context.Context, store storage.Store) (*Ledger, error) {
	l := &Ledger{store: store}

	found, err := store.Load(ctx, keyTransactions, &l.transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if !found {
		l.transactions = []model.Transaction{}
	}

	found, err = store.Load(ctx, keyCategories, &l.categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if !found {
		l.categories = model.DefaultCategories()
	}

	found, err = store.Load(ctx, keySettings, &l.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !found {
		l.settings = model.DefaultSettings()
	}

	found, err = store.Load(ctx, keyReceivables, &l.receivables)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivables: %w", err)
	}
	if !found {
		l.receivables = []model.Receivable{}
	}

	found, err = store.Load(ctx, keyPayables, &l.payables)
	if err != nil {
		return nil, fmt.Errorf("failed to load payables: %w", err)
	}
	if !found {
		l.payables = []model.Payable{}
	}

	return l, nil
}

// ResetData erases every persisted collection and restores the
// documented defaults in memory, so a later Open starts from the same
// blank state as a fresh install. Irreversible; callers are expected to
// confirm with the user first.
func (l *Ledger) ResetData(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := []string{keyTransactions, keyCategories, keySettings, keyReceivables, keyPayables}
	for _, key := range keys {
		if err := l.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	l.transactions = []model.Transaction{}
	l.categories = model.DefaultCategories()
	l.settings = model.DefaultSettings()
	l.receivables = []model.Receivable{}
	l.payables = []model.Payable{}
	return nil
}

// Transactions returns a snapshot of the transaction list, newest first.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.transactions)
}

// Categories returns a snapshot of the category list.
func (l *Ledger) Categories() []model.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.categories)
}

// Settings returns the current settings.
func (l *Ledger) Settings() model.Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

// Receivables returns a deep snapshot of the receivable list, newest first.
func (l *Ledger) Receivables() []model.Receivable {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneReceivables(l.receivables)
}

// Payables returns a deep snapshot of the payable list, newest first.
func (l *Ledger) Payables() []model.Payable {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clonePayables(l.payables)
}

func cloneReceivables(src []model.Receivable) []model.Receivable {
	out := slices.Clone(src)
	for i := range out {
		out[i].Payments = slices.Clone(out[i].Payments)
	}
	return out
}

func clonePayables(src []model.Payable) []model.Payable {
	out := slices.Clone(src)
	for i := range out {
		out[i].PaymentsMade = slices.Clone(out[i].PaymentsMade)
	}
	return out
}

// sortByDateDesc stably sorts a collection newest first. Relative order
// of entries sharing a date is preserved but not part of the contract.
func sortByDateDesc[T any](items []T, date func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return date(items[i]).After(date(items[j]))
	})
}
