package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The backend transmits every currency amount as a decimal-formatted string
// ("150.00"). This package is the single place those strings are parsed and
// re-serialized, so precision never leaks through float conversions.

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// Parse converts a wire string into a decimal amount. Empty strings parse as
// zero because several backend endpoints omit optional amounts instead of
// sending "0.00".
func Parse(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// MustParse is Parse for fixture and test values known to be well formed.
func MustParse(raw string) decimal.Decimal {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Format serializes an amount back to the wire shape: two decimal places,
// half-up rounded.
func Format(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// Percentage computes a percentage share of an amount, rounded half-up to the
// currency's two minor-unit places. Commission amounts are fixed at creation
// time with exactly this rule.
func Percentage(amount decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}

// Sum adds a slice of amounts.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
