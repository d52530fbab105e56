// Package money holds the monetary helpers shared by the pricing code.
package money

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount with full decimal precision.
type Money = decimal.Decimal

const displayPlaces = 2

func Zero() Money {
	return decimal.Zero
}

func FromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// FromFloat is meant for configuration values only.
func FromFloat(v float64) Money {
	return decimal.NewFromFloat(v)
}

// MustParse panics on malformed input. Use only for constants and tests.
func MustParse(s string) Money {
	return decimal.RequireFromString(s)
}

func Sum(values ...Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// NonNegative clamps v at zero.
func NonNegative(v Money) Money {
	if v.IsNegative() {
		return decimal.Zero
	}

	return v
}

// Percent returns base * pct / 100.
func Percent(base, pct Money) Money {
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}

// Round rounds to the display precision using banker's rounding.
func Round(v Money) Money {
	return v.RoundBank(displayPlaces)
}
