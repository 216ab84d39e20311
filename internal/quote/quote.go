// Package quote supplies a motivational one-liner for the dashboard.
// The operation always eventually yields some string: the Gemini tier
// falls back to the built-in list on any failure, and the built-in
// list never fails.
package quote

import (
	"context"
	"math/rand/v2"
	"strings"
)

// Supplier returns one motivational quote.
type Supplier interface {
	Quote(ctx context.Context) (string, error)
}

var builtin = []string{
	"The secret of getting ahead is getting started.",
	"A budget is telling your money where to go, instead of wondering where it went.",
	"Do not save what is left after spending, but spend what is left after saving.",
	"Financial discipline is the bridge between goals and accomplishment.",
	"Your financial health is more important than the opinion of others.",
	"Save money and money will save you.",
	"Small savings add up to a large sum over time.",
}

// Local picks from the built-in quote list. It works offline and never
// returns an error.
type Local struct{}

// NewLocal creates the offline supplier.
func NewLocal() *Local {
	return &Local{}
}

// Quote returns a random quote from the built-in list.
func (l *Local) Quote(_ context.Context) (string, error) {
	return builtin[rand.IntN(len(builtin))], nil
}

// clean trims whitespace and surrounding quote marks from a model
// response.
func clean(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"“”`)
}
