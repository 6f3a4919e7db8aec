package classifier

import (
	"context"
	"fmt"
	"strings"
)

// FactSource looks up a trivia sentence for a non-negative integer.
type FactSource interface {
	Lookup(ctx context.Context, n uint64) (string, error)
}

// ArmstrongFact explains why k is an Armstrong number, e.g.
// "153 is an Armstrong number because 1^3 + 5^3 + 3^3 = 153".
func ArmstrongFact(number string, k uint64) string {
	digits := Digits(k)
	terms := make([]string, len(digits))
	for i, d := range digits {
		terms[i] = fmt.Sprintf("%d^%d", d, len(digits))
	}
	return fmt.Sprintf("%s is an Armstrong number because %s = %d", number, strings.Join(terms, " + "), k)
}

// FallbackFact is used when no trivia source answered.
func FallbackFact(number string) string {
	return number + " is an interesting number!"
}
