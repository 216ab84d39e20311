package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReceivableRefreshStatus(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		payments []string
		want     ReceivableStatus
	}{
		{name: "no payments", amount: "500", payments: nil, want: ReceivablePending},
		{name: "partial payment", amount: "500", payments: []string{"100"}, want: ReceivablePending},
		{name: "exact payment", amount: "500", payments: []string{"500"}, want: ReceivableReceived},
		{name: "split payments covering total", amount: "500", payments: []string{"250", "250"}, want: ReceivableReceived},
		{name: "payments exceeding total", amount: "500", payments: []string{"400", "200"}, want: ReceivableReceived},
		{name: "fractional remainder", amount: "0.30", payments: []string{"0.10", "0.20"}, want: ReceivableReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Receivable{Amount: dec(tt.amount), Date: time.Now()}
			for _, p := range tt.payments {
				r.Payments = append(r.Payments, Payment{Amount: dec(p)})
			}
			r.RefreshStatus()
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestReceivableRemaining(t *testing.T) {
	r := Receivable{
		Amount:   dec("500"),
		Payments: []Payment{{Amount: dec("150")}, {Amount: dec("50")}},
	}
	assert.True(t, dec("200").Equal(r.PaidAmount()))
	assert.True(t, dec("300").Equal(r.Remaining()))
}

func TestPayableRefreshStatus(t *testing.T) {
	p := Payable{Amount: dec("300")}
	p.RefreshStatus()
	assert.Equal(t, PayableDue, p.Status)

	p.PaymentsMade = append(p.PaymentsMade, PaymentMade{Amount: dec("100")})
	p.RefreshStatus()
	assert.Equal(t, PayableDue, p.Status)
	assert.True(t, dec("200").Equal(p.Remaining()))

	p.PaymentsMade = append(p.PaymentsMade, PaymentMade{Amount: dec("200")})
	p.RefreshStatus()
	assert.Equal(t, PayablePaid, p.Status)
}
