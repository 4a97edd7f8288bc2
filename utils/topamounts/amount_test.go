package topamounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func signed(amounts []Amount) []float64 {
	out := make([]float64, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, a.Signed)
	}
	return out
}

func TestParseAmounts(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1200.50", []float64{1200.50}},
		{"1,25,000.00", []float64{125000}},
		{"₹ 2,500.75", []float64{2500.75}},
		{"Rs.500", []float64{500}},
		{"-300.00", []float64{-300}},
		{"(450.00)", []float64{-450}},
		{"100.00 Dr", []float64{100}},
		{"12.00 / 8.50", []float64{12, 8.5}},
		{"", nil},
		{"N/A", nil},
		{"--", nil},
	}

	for _, tt := range tests {
		got := ParseAmounts(tt.in)
		if tt.want == nil {
			assert.Empty(t, got, "input %q", tt.in)
			continue
		}
		assert.Equal(t, tt.want, signed(got), "input %q", tt.in)
	}
}

func TestParseAmountsParentheses(t *testing.T) {
	got := ParseAmounts("(1,000.00)")
	if assert.Len(t, got, 1) {
		assert.True(t, got[0].Parenthesized)
		assert.Equal(t, -1000.0, got[0].Signed)
	}

	got = ParseAmounts("1,000.00")
	if assert.Len(t, got, 1) {
		assert.False(t, got[0].Parenthesized)
	}
}

func TestParseLooseAmounts(t *testing.T) {
	assert.Equal(t, []float64{-200}, signed(ParseLooseAmounts("-200")))
	assert.Equal(t, []float64{1000.5}, signed(ParseLooseAmounts("(1,000.50)")))
	assert.Equal(t, []float64{15, 3}, signed(ParseLooseAmounts("Charges 15 x 3")))
	assert.Empty(t, ParseLooseAmounts("Cash Dep (Cr)"))
}
