package model

import (
	"strconv"
	"strings"
)

// Number holds a parsed numeric literal, remembering whether it was integral or real.
type Number struct {
	integral bool
	i        int64
	f        float64
}

// IntNumber wraps an integral value.
func IntNumber(v int64) Number {
	return Number{integral: true, i: v, f: float64(v)}
}

// RealNumber wraps a value parsed from a literal with a fraction or exponent.
func RealNumber(v float64) Number {
	return Number{f: v}
}

// IsInteger reports whether the literal was integral.
func (n Number) IsInteger() bool { return n.integral }

// Int returns the integral value; zero for real numbers.
func (n Number) Int() int64 { return n.i }

// Float returns the value as float64.
func (n Number) Float() float64 { return n.f }

// String renders the value the way it is written to JSON.
// Real values always carry a fraction or exponent so they stay distinguishable from integers.
func (n Number) String() string {
	if n.integral {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// MarshalJSON writes the number as a bare JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}
