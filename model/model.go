// Package model contains core data types for the project.
package model

// Property is a tag attached to a classified number.
type Property string

const (
	Armstrong Property = "armstrong" // Armstrong marks a narcissistic number.
	Even      Property = "even"      // Even marks an effective integer divisible by two.
	Odd       Property = "odd"       // Odd marks an effective integer not divisible by two.
)

// ClassificationResult is the response body for a successfully classified number.
type ClassificationResult struct {
	Number     Number     `json:"number"`     // Number as supplied by the caller.
	IsPrime    bool       `json:"is_prime"`   // Primality of the effective integer.
	IsPerfect  bool       `json:"is_perfect"` // Whether the effective integer is perfect.
	Properties []Property `json:"properties"` // Optional "armstrong", then "even" or "odd".
	DigitSum   uint64     `json:"digit_sum"`  // Sum of the decimal digits.
	FunFact    string     `json:"fun_fact"`   // Trivia sentence.
}

// ErrorResult is the response body for any failed request.
type ErrorResult struct {
	Error   bool    `json:"error"`
	Message string  `json:"message"`
	Number  *string `json:"number,omitempty"` // Raw input echoed back, when available.
}

// NewErrorResult builds an ErrorResult with the error flag set.
func NewErrorResult(message string) ErrorResult {
	return ErrorResult{Error: true, Message: message}
}

// WithNumber returns a copy of e echoing raw.
func (e ErrorResult) WithNumber(raw string) ErrorResult {
	e.Number = &raw
	return e
}
