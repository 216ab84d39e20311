package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunaidhosse/fare/internal/model"
)

func txn(txnType model.TransactionType, amount, category, date string) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		Type:     txnType,
		Amount:   decimal.RequireFromString(amount),
		Category: model.Category{ID: model.Slugify(category), Name: category},
		Date:     d,
	}
}

func TestBuildMonthly(t *testing.T) {
	txns := []model.Transaction{
		txn(model.TransactionIncome, "900", "Income", "2024-01-05"),
		txn(model.TransactionExpense, "120", "Fuel", "2024-01-10"),
		txn(model.TransactionExpense, "80", "Food", "2024-01-12"),
		txn(model.TransactionExpense, "30", "Fuel", "2024-01-20"),
		// Outside the requested month.
		txn(model.TransactionExpense, "999", "Fuel", "2024-02-01"),
		txn(model.TransactionIncome, "500", "Income", "2023-12-31"),
	}

	m := BuildMonthly(txns, "2024-01")

	assert.Equal(t, "2024-01", m.Month)
	assert.True(t, decimal.RequireFromString("900").Equal(m.Income))
	assert.True(t, decimal.RequireFromString("230").Equal(m.Expense))
	assert.True(t, decimal.RequireFromString("670").Equal(m.Savings))

	require.Len(t, m.Breakdown, 2)
	assert.Equal(t, "Fuel", m.Breakdown[0].Name)
	assert.True(t, decimal.RequireFromString("150").Equal(m.Breakdown[0].Amount))
	assert.Equal(t, "Food", m.Breakdown[1].Name)
	assert.True(t, decimal.RequireFromString("80").Equal(m.Breakdown[1].Amount))
}

func TestBuildMonthlyEmptyMonth(t *testing.T) {
	m := BuildMonthly(nil, "2024-03")
	assert.True(t, m.Income.IsZero())
	assert.True(t, m.Expense.IsZero())
	assert.True(t, m.Savings.IsZero())
	assert.Empty(t, m.Breakdown)
}

func TestMonthlyMarkdown(t *testing.T) {
	m := BuildMonthly([]model.Transaction{
		txn(model.TransactionIncome, "100", "Income", "2024-01-05"),
		txn(model.TransactionExpense, "40", "Fuel", "2024-01-06"),
	}, "2024-01")

	md := m.Markdown(func(d decimal.Decimal) string { return d.String() + " SAR" })

	assert.Contains(t, md, "# Monthly Report: 2024-01")
	assert.Contains(t, md, "| Total Income | 100 SAR |")
	assert.Contains(t, md, "| Savings | 60 SAR |")
	assert.Contains(t, md, "| Fuel | 40 SAR |")
}

func TestMonthlyMarkdownNoExpenses(t *testing.T) {
	m := BuildMonthly(nil, "2024-01")
	md := m.Markdown(func(d decimal.Decimal) string { return d.String() })
	assert.Contains(t, md, "No expense data for this month.")
}
