package classifier

import (
	"context"
	"strings"

	"github.com/and161185/numclass/model"
	"go.uber.org/zap"
)

// Classifier computes a ClassificationResult for parsed input.
type Classifier struct {
	facts  FactSource
	logger *zap.SugaredLogger
}

// New returns a Classifier. facts may be nil, in which case only synthesized facts are produced.
func New(facts FactSource, logger *zap.SugaredLogger) *Classifier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Classifier{facts: facts, logger: logger}
}

// Classify never fails: every predicate is total over the effective integer.
func (c *Classifier) Classify(ctx context.Context, in NumericInput) model.ClassificationResult {
	k := in.Effective()
	return model.ClassificationResult{
		Number:     in.Value,
		IsPrime:    IsPrime(k),
		IsPerfect:  IsPerfect(k),
		Properties: Properties(k),
		DigitSum:   DigitSum(k),
		FunFact:    c.funFact(ctx, in.Value, k),
	}
}

func (c *Classifier) funFact(ctx context.Context, number model.Number, k uint64) string {
	if IsArmstrong(k) {
		return ArmstrongFact(number.String(), k)
	}
	if c.facts == nil {
		return FallbackFact(number.String())
	}

	fact, err := c.facts.Lookup(ctx, k)
	if err != nil {
		c.logger.Debugf("fun fact lookup failed [n=%d]: %v", k, err)
		return FallbackFact(number.String())
	}
	fact = strings.TrimSpace(fact)
	if fact == "" {
		return FallbackFact(number.String())
	}
	return fact
}
