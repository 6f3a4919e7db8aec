package classifier

import (
	"math/big"
	"math/bits"

	"github.com/and161185/numclass/model"
)

// trialDivisionLimit bounds the inputs IsPrime checks by trial division.
// Above it a Baillie-PSW test is used, which is exact for every uint64.
const trialDivisionLimit = 1 << 32

// perfectNumbers lists every perfect number that fits in a uint64 (Euclid-Euler, p = 2..31).
var perfectNumbers = map[uint64]struct{}{
	6:                   {},
	28:                  {},
	496:                 {},
	8128:                {},
	33550336:            {},
	8589869056:          {},
	137438691328:        {},
	2305843008139952128: {},
}

// IsPrime reports whether k is prime.
func IsPrime(k uint64) bool {
	if k < 2 {
		return false
	}
	if k < 4 {
		return true
	}
	if k%2 == 0 || k%3 == 0 {
		return false
	}
	if k >= trialDivisionLimit {
		return new(big.Int).SetUint64(k).ProbablyPrime(0)
	}
	for i := uint64(5); i <= k/i; i += 6 {
		if k%i == 0 || k%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether k equals the sum of its proper divisors.
func IsPerfect(k uint64) bool {
	_, ok := perfectNumbers[k]
	return ok
}

// Digits returns the decimal digits of k, most significant first.
func Digits(k uint64) []uint8 {
	if k == 0 {
		return []uint8{0}
	}
	var rev []uint8
	for ; k > 0; k /= 10 {
		rev = append(rev, uint8(k%10))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// IsArmstrong reports whether k equals the sum of its digits each raised to the digit count.
// Single-digit numbers match trivially and are not counted.
func IsArmstrong(k uint64) bool {
	if k < 10 {
		return false
	}
	digits := Digits(k)
	n := len(digits)
	var sum uint64
	for _, d := range digits {
		var carry uint64
		sum, carry = bits.Add64(sum, pow(uint64(d), n), 0)
		if carry != 0 {
			return false
		}
	}
	return sum == k
}

// DigitSum returns the sum of the decimal digits of k.
func DigitSum(k uint64) uint64 {
	var sum uint64
	for ; k > 0; k /= 10 {
		sum += k % 10
	}
	return sum
}

// Properties returns the property tags for k: "armstrong" if applicable, then the parity tag.
func Properties(k uint64) []model.Property {
	props := make([]model.Property, 0, 2)
	if IsArmstrong(k) {
		props = append(props, model.Armstrong)
	}
	if k%2 == 0 {
		props = append(props, model.Even)
	} else {
		props = append(props, model.Odd)
	}
	return props
}

// pow fits in uint64 for any single digit and n <= 20, which covers every uint64.
func pow(d uint64, n int) uint64 {
	r := uint64(1)
	for i := 0; i < n; i++ {
		r *= d
	}
	return r
}
