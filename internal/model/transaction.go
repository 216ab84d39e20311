package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts
// from the balance.
type TransactionType string

const (
	// TransactionIncome represents money coming in.
	TransactionIncome TransactionType = "income"
	// TransactionExpense represents money going out.
	TransactionExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry.
type Transaction struct {
	Date     time.Time       `json:"date"`
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Notes    string          `json:"notes,omitempty"`
	Category Category        `json:"category"` // snapshot at entry time, not a live reference
	Amount   decimal.Decimal `json:"amount"`
}
