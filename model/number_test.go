package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber_String(t *testing.T) {
	tests := []struct {
		name string
		num  Number
		want string
	}{
		{"int", IntNumber(153), "153"},
		{"negative_int", IntNumber(-7), "-7"},
		{"real_fraction", RealNumber(4.5), "4.5"},
		{"real_integral_value", RealNumber(4), "4.0"},
		{"real_large", RealNumber(1e21), "1e+21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.num.String())
		})
	}
}

func TestClassificationResult_JSON(t *testing.T) {
	res := ClassificationResult{
		Number:     IntNumber(371),
		IsPrime:    false,
		IsPerfect:  false,
		Properties: []Property{Armstrong, Odd},
		DigitSum:   11,
		FunFact:    "fact",
	}
	b, err := json.Marshal(res)
	require.NoError(t, err)
	require.JSONEq(t, `{"number":371,"is_prime":false,"is_perfect":false,"properties":["armstrong","odd"],"digit_sum":11,"fun_fact":"fact"}`, string(b))

	res.Number = RealNumber(2)
	b, err = json.Marshal(res)
	require.NoError(t, err)
	require.Contains(t, string(b), `"number":2.0`)
}

func TestErrorResult_JSON(t *testing.T) {
	b, err := json.Marshal(NewErrorResult("Number parameter is missing"))
	require.NoError(t, err)
	require.JSONEq(t, `{"error":true,"message":"Number parameter is missing"}`, string(b))

	b, err = json.Marshal(NewErrorResult("Invalid number: abc").WithNumber("abc"))
	require.NoError(t, err)
	require.JSONEq(t, `{"error":true,"message":"Invalid number: abc","number":"abc"}`, string(b))
}
