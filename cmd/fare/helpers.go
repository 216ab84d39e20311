package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/ledger"
	"github.com/zunaidhosse/fare/internal/model"
	"github.com/zunaidhosse/fare/internal/storage"
)

// openLedger opens the storage tier and loads the ledger from it. The
// returned cleanup closes the store.
func openLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fare/fare.db"
	}
	dbPath = expandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	l, err := ledger.Open(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return l, func() { _ = store.Close() }, nil
}

// expandPath expands ~ and environment variables in a file path.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// parseAmount validates a user-supplied amount: well-formed and
// strictly positive. Input validation lives here in the command layer;
// the ledger assumes validated input.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp. An empty
// string means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
}

// findCategory resolves a category by id or name from the current set.
func findCategory(categories []model.Category, idOrName string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == idOrName || strings.EqualFold(c.Name, idOrName) {
			return c, true
		}
	}
	return model.Category{}, false
}

// formatMoney renders an amount in the ledger's configured currency.
func formatMoney(l *ledger.Ledger, amount decimal.Decimal) string {
	return cli.FormatMoney(amount, l.Settings().Currency)
}
