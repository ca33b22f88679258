package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor currency units (cents for USD).
//
// The zero Amount is "absent" and renders as 0, the same way a NaN or an
// unparsable string does. Use Cents, FromFloat or ParseAmount to build a
// numeric one.
type Amount struct {
	value   decimal.Decimal
	numeric bool
}

// Cents returns an amount of c minor units.
func Cents(c int64) Amount {
	return Amount{value: decimal.NewFromInt(c), numeric: true}
}

// FromFloat returns an amount of f minor units. NaN and infinities are not
// numeric.
func FromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}
	}
	return Amount{value: decimal.NewFromFloat(f), numeric: true}
}

// maxDigits is the number of integer digits in the largest float64. Amounts
// beyond it are Infinity to a browser and render as non-numeric here.
const maxDigits = 309

// ParseAmount interprets s as minor units after removing the first literal
// ".", so "10.00" is read as 1000 cents. Surrounding whitespace is ignored
// and an empty string is zero. Values too large for a float64 are not
// numeric and values too small for one are zero.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(strings.Replace(s, ".", "", 1))
	if s == "" {
		return Cents(0)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}

	magnitude := d.NumDigits() + int(d.Exponent())
	switch {
	case d.IsZero():
		return Cents(0)
	case magnitude > maxDigits:
		return Amount{}
	case magnitude < -maxDigits:
		return Cents(0)
	}
	return Amount{value: d, numeric: true}
}

// IsNumeric reports whether the amount holds a number.
func (a Amount) IsNumeric() bool {
	return a.numeric
}

// Major returns the amount in major units (minor / 100).
func (a Amount) Major() decimal.Decimal {
	return a.value.Shift(-2)
}
