package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// SettingsUpdate is a partial settings mutation. Nil fields are left
// unchanged; SpendingLimit can only be removed via ClearSpendingLimit
// because nil already means "don't touch".
type SettingsUpdate struct {
	Currency           *string
	DarkMode           *bool
	SpendingLimit      *decimal.Decimal
	ClearSpendingLimit bool
}

// UpdateSettings shallow-merges the update into the current settings
// and returns the merged result.
func (l *Ledger) UpdateSettings(ctx context.Context, update SettingsUpdate) (model.Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.settings
	if update.Currency != nil {
		next.Currency = *update.Currency
	}
	if update.DarkMode != nil {
		next.DarkMode = *update.DarkMode
	}
	if update.ClearSpendingLimit {
		next.SpendingLimit = nil
	} else if update.SpendingLimit != nil {
		limit := *update.SpendingLimit
		next.SpendingLimit = &limit
	}

	if err := l.store.Save(ctx, keySettings, next); err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	l.settings = next
	return next, nil
}
