// Package numeric parses line text as arbitrary-precision base-10 numbers.
//
// Parsing never loses precision: integer and fractional parts may have any
// number of digits. Exponent forms are not accepted.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// syntax matches an optionally signed decimal literal with at least one digit
// in the mantissa. "5." and ".5" are both accepted.
var syntax = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// Value is a parsed number together with its integrality.
type Value struct {
	d        decimal.Decimal
	integral bool
}

// Parse attempts to read s as a decimal number. The second return value is
// false when s is not numeric; that is a classification signal, not an error.
// Leading and trailing whitespace must already have been removed.
func Parse(s string) (Value, bool) {
	if !syntax.MatchString(s) {
		return Value{}, false
	}

	text := normalize(s)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Value{}, false
	}

	return Value{d: d, integral: !strings.Contains(text, ".")}, true
}

// normalize rewrites the accepted literal forms into "-?digits(.digits)?"
// with trailing fractional zeros removed, so "3.000" becomes "3".
func normalize(s string) string {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}

	if neg {
		return "-" + s
	}
	return s
}

// Decimal returns the exact value.
func (v Value) Decimal() decimal.Decimal {
	return v.d
}

// Integral reports whether the value has no fractional digits once trailing
// fractional zeros are stripped.
func (v Value) Integral() bool {
	return v.integral
}

// String returns the canonical form: no leading zeros, no plus sign, trailing
// fractional zeros stripped and negative zero written as "0".
func (v Value) String() string {
	return v.d.String()
}
