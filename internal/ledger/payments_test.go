package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunaidhosse/fare/internal/model"
	"github.com/zunaidhosse/fare/internal/storage"
)

func TestAddReceivableInitializesDerivedFields(t *testing.T) {
	l, _ := newTestLedger(t)

	rec, err := l.AddReceivable(context.Background(), ReceivableData{
		PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, model.ReceivablePending, rec.Status)
	assert.Empty(t, rec.Payments)
	assert.NotNil(t, rec.Payments)
}

func TestAddPaymentSettlesReceivableAndPostsIncome(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.AddReceivable(ctx, ReceivableData{
		PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01"),
	})
	require.NoError(t, err)

	updated, err := l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec("500"), Date: day("2024-01-02")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, model.ReceivableReceived, updated.Status)
	require.Len(t, updated.Payments, 1)
	assert.True(t, dec("500").Equal(updated.Payments[0].Amount))
	assert.True(t, updated.Remaining().IsZero())

	// The observable side effect: a matching income transaction.
	txns := l.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.TransactionIncome, txns[0].Type)
	assert.True(t, dec("500").Equal(txns[0].Amount))
	assert.Equal(t, "income", txns[0].Category.ID)
	assert.Equal(t, day("2024-01-02"), txns[0].Date)
	assert.Equal(t, "Payment from Ali", txns[0].Notes)

	assert.True(t, dec("500").Equal(l.Totals().Income))
}

func TestAddPaymentWithNotesSuffix(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.AddReceivable(ctx, ReceivableData{
		PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01"),
	})
	require.NoError(t, err)

	_, err = l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec("200"), Date: day("2024-01-02"), Notes: "first installment"})
	require.NoError(t, err)

	txns := l.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "Payment from Ali - first installment", txns[0].Notes)
}

func TestAddPaymentUnknownReceivableIsNoOp(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01")})
	require.NoError(t, err)
	before := l.Receivables()

	updated, err := l.AddPayment(ctx, "no-such-id", PaymentData{Amount: dec("100"), Date: day("2024-01-02")})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, l.Receivables())
	assert.Empty(t, l.Transactions(), "no income transaction may be posted")
}

func TestAddPaymentRejectsInvalidAmounts(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01")})
	require.NoError(t, err)

	_, err = l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec("0"), Date: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrPaymentNotPositive)

	_, err = l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec("-5"), Date: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrPaymentNotPositive)

	_, err = l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec("600"), Date: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrPaymentExceedsRemaining)

	// A rejected payment changes nothing.
	recs := l.Receivables()
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Payments)
	assert.Empty(t, l.Transactions())
}

func TestPendingReceivablesTotalExcludesReceived(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	a, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01")})
	require.NoError(t, err)
	b, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Karim", Amount: dec("200"), Date: day("2024-01-02")})
	require.NoError(t, err)

	assert.True(t, dec("700").Equal(l.Totals().PendingReceivables))

	// Partial payment shrinks the pending total by the paid amount.
	_, err = l.AddPayment(ctx, a.ID, PaymentData{Amount: dec("150"), Date: day("2024-01-03")})
	require.NoError(t, err)
	assert.True(t, dec("550").Equal(l.Totals().PendingReceivables))

	// Settling a receivable removes its remainder entirely.
	_, err = l.AddPayment(ctx, b.ID, PaymentData{Amount: dec("200"), Date: day("2024-01-04")})
	require.NoError(t, err)
	assert.True(t, dec("350").Equal(l.Totals().PendingReceivables))
}

func TestAddPayablePartialPayment(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	pay, err := l.AddPayable(ctx, PayableData{PersonName: "Shop", Amount: dec("300"), Date: day("2024-01-01")})
	require.NoError(t, err)
	assert.Equal(t, model.PayableDue, pay.Status)
	assert.Empty(t, pay.PaymentsMade)

	updated, err := l.AddPaymentMade(ctx, pay.ID, PaymentData{Amount: dec("100"), Date: day("2024-01-05"), Notes: "partial"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, model.PayableDue, updated.Status, "partial payment must not settle the payable")
	assert.True(t, dec("200").Equal(updated.Remaining()))

	txns := l.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.TransactionExpense, txns[0].Type)
	assert.Equal(t, "other", txns[0].Category.ID)
	assert.Equal(t, "Payment to Shop - partial", txns[0].Notes)

	assert.True(t, dec("200").Equal(l.Totals().DuePayables))
}

func TestAddPaymentMadeSettlesPayable(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	pay, err := l.AddPayable(ctx, PayableData{PersonName: "Garage", Amount: dec("300"), Date: day("2024-01-01")})
	require.NoError(t, err)

	_, err = l.AddPaymentMade(ctx, pay.ID, PaymentData{Amount: dec("100"), Date: day("2024-01-05")})
	require.NoError(t, err)
	updated, err := l.AddPaymentMade(ctx, pay.ID, PaymentData{Amount: dec("200"), Date: day("2024-01-06")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, model.PayablePaid, updated.Status)
	assert.True(t, l.Totals().DuePayables.IsZero())
	assert.Len(t, l.Transactions(), 2)
}

func TestAddPaymentMadeFallbackCategory(t *testing.T) {
	// Seed a store whose category list no longer contains "other".
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "categories", []model.Category{
		{ID: "fuel", Name: "Fuel", Icon: "⛽"},
	}))

	l, err := Open(ctx, store)
	require.NoError(t, err)

	pay, err := l.AddPayable(ctx, PayableData{PersonName: "Shop", Amount: dec("50"), Date: day("2024-01-01")})
	require.NoError(t, err)
	_, err = l.AddPaymentMade(ctx, pay.ID, PaymentData{Amount: dec("50"), Date: day("2024-01-02")})
	require.NoError(t, err)

	txns := l.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.FallbackCategory(), txns[0].Category)
}

func TestUpdatePayableUnknownIDIsNoOp(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddPayable(ctx, PayableData{PersonName: "Shop", Amount: dec("300"), Date: day("2024-01-01")})
	require.NoError(t, err)
	before := l.Payables()

	ghost := model.Payable{ID: "no-such-id", PersonName: "Ghost", Amount: dec("1"), Date: day("2024-01-01")}
	require.NoError(t, l.UpdatePayable(ctx, ghost))
	assert.Equal(t, before, l.Payables())
}

func TestDeleteReceivableAndPayable(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Ali", Amount: dec("500"), Date: day("2024-01-01")})
	require.NoError(t, err)
	pay, err := l.AddPayable(ctx, PayableData{PersonName: "Shop", Amount: dec("300"), Date: day("2024-01-01")})
	require.NoError(t, err)

	require.NoError(t, l.DeleteReceivable(ctx, rec.ID))
	require.NoError(t, l.DeletePayable(ctx, pay.ID))
	assert.Empty(t, l.Receivables())
	assert.Empty(t, l.Payables())

	// Unknown ids are no-ops.
	require.NoError(t, l.DeleteReceivable(ctx, rec.ID))
	require.NoError(t, l.DeletePayable(ctx, pay.ID))
}

func TestStatusInvariantAcrossPayments(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.AddReceivable(ctx, ReceivableData{PersonName: "Ali", Amount: dec("300"), Date: day("2024-01-01")})
	require.NoError(t, err)

	for _, amount := range []string{"100", "50", "150"} {
		_, err = l.AddPayment(ctx, rec.ID, PaymentData{Amount: dec(amount), Date: day("2024-01-02")})
		require.NoError(t, err)

		// The invariant holds at every step: received iff paid >= amount.
		current := l.Receivables()[0]
		covered := current.PaidAmount().GreaterThanOrEqual(current.Amount)
		if covered {
			assert.Equal(t, model.ReceivableReceived, current.Status)
		} else {
			assert.Equal(t, model.ReceivablePending, current.Status)
		}
	}

	assert.Equal(t, model.ReceivableReceived, l.Receivables()[0].Status)
}
