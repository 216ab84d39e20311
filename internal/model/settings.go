package model

import "github.com/shopspring/decimal"

// Settings is the singleton user preferences object. It is mutated by
// partial merge and only ever reset to defaults, never deleted.
type Settings struct {
	Currency      string           `json:"currency"`
	DarkMode      bool             `json:"darkMode"`
	SpendingLimit *decimal.Decimal `json:"spendingLimit"`
}

// DefaultSettings returns the settings a fresh ledger starts with.
// There is no system color-scheme preference to consult in a terminal,
// so dark mode starts off.
func DefaultSettings() Settings {
	return Settings{Currency: "SAR", DarkMode: false, SpendingLimit: nil}
}
