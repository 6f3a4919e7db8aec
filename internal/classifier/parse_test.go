package classifier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		present   bool
		wantErr   error
		wantInt   bool
		wantFloat float64
	}{
		{"missing", "", false, ErrMissingParameter, false, 0},
		{"empty", "", true, ErrInvalidNumber, false, 0},
		{"letters", "abc", true, ErrInvalidNumber, false, 0},
		{"trailing_garbage", "12a", true, ErrInvalidNumber, false, 0},
		{"spaces", " 12", true, ErrInvalidNumber, false, 0},
		{"inf", "inf", true, ErrInvalidNumber, false, 0},
		{"nan", "NaN", true, ErrInvalidNumber, false, 0},
		{"hex", "0x1F", true, ErrInvalidNumber, false, 0},
		{"underscore", "1_000", true, ErrInvalidNumber, false, 0},
		{"int_overflow", "9223372036854775808", true, ErrInvalidNumber, false, 0},
		{"real_overflow", "1e300", true, ErrInvalidNumber, false, 0},
		{"exp_overflow", "1e400", true, ErrInvalidNumber, false, 0},
		{"int", "153", true, nil, true, 153},
		{"signed_int", "+28", true, nil, true, 28},
		{"negative_int", "-17", true, nil, true, -17},
		{"min_int", "-9223372036854775808", true, nil, true, math.MinInt64},
		{"real", "4.5", true, nil, false, 4.5},
		{"real_trailing_dot", "4.", true, nil, false, 4},
		{"real_leading_dot", ".5", true, nil, false, 0.5},
		{"exponent", "1e3", true, nil, false, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Parse(tt.raw, tt.present)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.raw, in.Raw)
			require.Equal(t, tt.wantInt, in.Value.IsInteger())
			require.Equal(t, tt.wantFloat, in.Value.Float())
		})
	}
}

func TestParse_InvalidNumberErrorEchoesRaw(t *testing.T) {
	_, err := Parse("abc", true)

	var inv *InvalidNumberError
	require.True(t, errors.As(err, &inv))
	require.Equal(t, "abc", inv.Raw)
	require.False(t, errors.Is(err, ErrMissingParameter))
}

func TestNumericInput_Effective(t *testing.T) {
	tests := []struct {
		raw  string
		want uint64
	}{
		{"0", 0},
		{"153", 153},
		{"-153", 153},
		{"4.9", 4},
		{"-4.9", 4},
		{"0.3", 0},
		{"-9223372036854775808", 1 << 63},
		{"9223372036854775807", math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			in, err := Parse(tt.raw, true)
			require.NoError(t, err)
			require.Equal(t, tt.want, in.Effective())
		})
	}
}
