package calculator

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance below which a monetary difference is treated as
// settled. Every comparison of amounts in this package uses it.
const Epsilon = 0.01

// IsZero reports whether amount is within Epsilon of zero.
func IsZero(amount float64) bool {
	return math.Abs(amount) <= Epsilon
}

// FormatAmount renders v with the given number of decimal places, rounding
// half away from zero.
func FormatAmount(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// RoundCents rounds v to two decimal places for display.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// value treats NaN inputs as zero.
func value(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// finite treats NaN and infinite amounts as zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
