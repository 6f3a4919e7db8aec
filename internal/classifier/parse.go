// Package classifier parses numeric query input and computes number properties.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/and161185/numclass/model"
)

var (
	ErrMissingParameter = errors.New("number parameter is missing")
	ErrInvalidNumber    = errors.New("invalid number")
)

var (
	decimalLiteral  = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	integralLiteral = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// maxMagnitude is 2^63; real values at or above it have no int64 effective integer.
const maxMagnitude = float64(1 << 63)

// InvalidNumberError reports a query value that is not a usable decimal literal.
type InvalidNumberError struct {
	Raw string
	Err error
}

func (e *InvalidNumberError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid number %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid number %q", e.Raw)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }

func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// NumericInput is a validated query value.
type NumericInput struct {
	Raw   string
	Value model.Number
}

// Parse validates raw and converts it into a NumericInput.
// present is false when the query parameter was absent altogether.
func Parse(raw string, present bool) (NumericInput, error) {
	if !present {
		return NumericInput{}, ErrMissingParameter
	}
	if !decimalLiteral.MatchString(raw) {
		return NumericInput{}, &InvalidNumberError{Raw: raw}
	}

	if integralLiteral.MatchString(raw) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return NumericInput{}, &InvalidNumberError{Raw: raw, Err: errors.Unwrap(err)}
		}
		return NumericInput{Raw: raw, Value: model.IntNumber(v)}, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NumericInput{}, &InvalidNumberError{Raw: raw, Err: errors.Unwrap(err)}
	}
	if math.Abs(v) >= maxMagnitude {
		return NumericInput{}, &InvalidNumberError{Raw: raw, Err: strconv.ErrRange}
	}
	return NumericInput{Raw: raw, Value: model.RealNumber(v)}, nil
}

// Effective returns floor(|x|), the integer every predicate works on.
func (in NumericInput) Effective() uint64 {
	if in.Value.IsInteger() {
		v := in.Value.Int()
		if v < 0 {
			// -(v+1) cannot overflow, even for math.MinInt64.
			return uint64(-(v + 1)) + 1
		}
		return uint64(v)
	}
	return uint64(math.Trunc(math.Abs(in.Value.Float())))
}
