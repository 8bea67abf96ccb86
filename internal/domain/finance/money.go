// Package finance holds the pure money rules of a service: rounding, tax and
// portfolio KPIs. Nothing here performs I/O.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to cents, half away from zero (half-up for non-negative values).
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// FromFloat converts a float coming from an untyped boundary (JSON, storage)
// into a decimal. NaN and infinities become zero.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// FromString parses a stored amount; anything unparseable is zero.
func FromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NonNegative clamps negative amounts to zero.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
