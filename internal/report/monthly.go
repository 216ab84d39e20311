// Package report computes summary views over the transaction list.
// Reports are pure projections: they read a snapshot and never touch
// the ledger.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Monthly summarizes a single calendar month.
type Monthly struct {
	Month     string // YYYY-MM
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Savings   decimal.Decimal
	Breakdown []CategoryAmount
}

// BuildMonthly filters the transaction list to the given YYYY-MM month
// and aggregates it: total income, total expense, savings and the
// expense breakdown by category name. Breakdown entries appear in the
// order their category is first seen.
func BuildMonthly(txns []model.Transaction, month string) Monthly {
	m := Monthly{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	index := make(map[string]int)
	for _, t := range txns {
		if t.Date.Format("2006-01") != month {
			continue
		}

		switch t.Type {
		case model.TransactionIncome:
			m.Income = m.Income.Add(t.Amount)
		case model.TransactionExpense:
			m.Expense = m.Expense.Add(t.Amount)

			name := t.Category.Name
			if i, ok := index[name]; ok {
				m.Breakdown[i].Amount = m.Breakdown[i].Amount.Add(t.Amount)
			} else {
				index[name] = len(m.Breakdown)
				m.Breakdown = append(m.Breakdown, CategoryAmount{Name: name, Amount: t.Amount})
			}
		}
	}

	m.Savings = m.Income.Sub(m.Expense)
	return m
}

// Markdown renders the summary as a markdown document suitable for
// terminal rendering. Amounts are formatted by the supplied function so
// the caller controls currency display.
func (m Monthly) Markdown(formatAmount func(decimal.Decimal) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monthly Report: %s\n\n", m.Month)

	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total Income | %s |\n", formatAmount(m.Income))
	fmt.Fprintf(&b, "| Total Expense | %s |\n", formatAmount(m.Expense))
	fmt.Fprintf(&b, "| Savings | %s |\n\n", formatAmount(m.Savings))

	if len(m.Breakdown) == 0 {
		fmt.Fprintf(&b, "No expense data for this month.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Expense Breakdown\n\n")
	fmt.Fprintf(&b, "| Category | Amount |\n|---|---:|\n")
	for _, entry := range m.Breakdown {
		fmt.Fprintf(&b, "| %s | %s |\n", entry.Name, formatAmount(entry.Amount))
	}
	return b.String()
}
