package classifier

import (
	"testing"
	"time"

	"github.com/and161185/numclass/model"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 97, 7919, 1_000_000_007}
	composites := []uint64{0, 1, 4, 9, 18, 25, 49, 91, 7917, 1_000_000_007 * 3}

	for _, p := range primes {
		require.True(t, IsPrime(p), "%d should be prime", p)
	}
	for _, c := range composites {
		require.False(t, IsPrime(c), "%d should not be prime", c)
	}
}

// Cross-check the 6m±1 loop against plain trial division over [2, sqrt(k)].
func TestIsPrime_MatchesNaiveTrialDivision(t *testing.T) {
	naive := func(k uint64) bool {
		if k < 2 {
			return false
		}
		for i := uint64(2); i*i <= k; i++ {
			if k%i == 0 {
				return false
			}
		}
		return true
	}
	for k := uint64(0); k < 5000; k++ {
		require.Equal(t, naive(k), IsPrime(k), "k=%d", k)
	}
	// Straddle the switch from trial division to the Baillie-PSW test.
	for k := uint64(trialDivisionLimit - 100); k < trialDivisionLimit+100; k++ {
		require.Equal(t, naive(k), IsPrime(k), "k=%d", k)
	}
}

func TestIsPrime_LargeInputs(t *testing.T) {
	primes := []uint64{4294967311, 3037000493, 9223372036854775783, 18446744073709551557}
	composites := []uint64{
		3037000493 * 3037000493,
		4294967311 * 3,
		1 << 63,
		9223372036854775807,
		18446744073709551615,
	}

	start := time.Now()
	for _, p := range primes {
		require.True(t, IsPrime(p), "%d should be prime", p)
	}
	for _, c := range composites {
		require.False(t, IsPrime(c), "%d should not be prime", c)
	}
	require.Less(t, time.Since(start), time.Second)
}

func TestIsPerfect(t *testing.T) {
	for _, k := range []uint64{6, 28, 496, 8128, 33550336, 8589869056, 137438691328, 2305843008139952128} {
		require.True(t, IsPerfect(k), "%d should be perfect", k)
	}
	for _, k := range []uint64{0, 1, 2, 10, 12, 27, 495, 8127, 9223372036854775783, 1 << 63, 18446744073709551615} {
		require.False(t, IsPerfect(k), "%d should not be perfect", k)
	}
}

func TestIsPerfect_MatchesProperDivisorSum(t *testing.T) {
	for k := uint64(0); k < 2000; k++ {
		var sum uint64
		for i := uint64(1); i < k; i++ {
			if k%i == 0 {
				sum += i
			}
		}
		require.Equal(t, k > 0 && sum == k, IsPerfect(k), "k=%d", k)
	}
}

func TestIsArmstrong(t *testing.T) {
	for _, k := range []uint64{153, 370, 371, 407, 1634, 8208, 9474, 4679307774} {
		require.True(t, IsArmstrong(k), "%d should be armstrong", k)
	}
	for _, k := range []uint64{0, 1, 4, 5, 9, 10, 100, 123, 154, 9475, 18446744073709551615} {
		require.False(t, IsArmstrong(k), "%d should not be armstrong", k)
	}
}

func TestDigits(t *testing.T) {
	require.Equal(t, []uint8{0}, Digits(0))
	require.Equal(t, []uint8{9, 8, 7, 5}, Digits(9875))
}

func TestDigitSum(t *testing.T) {
	require.Equal(t, uint64(29), DigitSum(9875))
	require.Equal(t, uint64(0), DigitSum(0))
	require.Equal(t, uint64(9), DigitSum(153))
}

func TestProperties(t *testing.T) {
	tests := []struct {
		k    uint64
		want []model.Property
	}{
		{153, []model.Property{model.Armstrong, model.Odd}},
		{4, []model.Property{model.Even}},
		{7, []model.Property{model.Odd}},
		{0, []model.Property{model.Even}},
		{10, []model.Property{model.Even}},
		{17, []model.Property{model.Odd}},
		{370, []model.Property{model.Armstrong, model.Even}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Properties(tt.k), "k=%d", tt.k)
	}
}
