package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount in the user's configured currency,
// e.g. FormatMoney(dec("1234.5"), "SAR") -> ".س.ر1,234.50". Unknown
// currency codes fall back to go-money's default formatting.
func FormatMoney(amount decimal.Decimal, code string) string {
	// The Money constructor never returns a nil currency, even for
	// codes it does not know.
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
