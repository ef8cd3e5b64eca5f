package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecognisedNotations(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    Kind
		decimal float64
	}{
		{name: "fractional slash", raw: "7/2", kind: KindFractional, decimal: 4.5},
		{name: "fractional dash", raw: "5-2", kind: KindFractional, decimal: 3.5},
		{name: "fractional colon", raw: "9:5", kind: KindFractional, decimal: 2.8},
		{name: "fractional space", raw: "7 2", kind: KindFractional, decimal: 4.5},
		{name: "fractional padded", raw: " 7 / 2 ", kind: KindFractional, decimal: 4.5},
		{name: "bare integer", raw: "6", kind: KindFractional, decimal: 7.0},
		{name: "bare integer two digits", raw: "15", kind: KindFractional, decimal: 16.0},
		{name: "even word", raw: "EVEN", kind: KindEven, decimal: 2.0},
		{name: "even lower case", raw: "even", kind: KindEven, decimal: 2.0},
		{name: "even short", raw: "EVN", kind: KindEven, decimal: 2.0},
		{name: "even dash", raw: "1-1", kind: KindEven, decimal: 2.0},
		{name: "even slash", raw: "1/1", kind: KindEven, decimal: 2.0},
		{name: "decimal", raw: "3.50", kind: KindDecimal, decimal: 3.5},
		{name: "decimal at floor", raw: "1.0", kind: KindDecimal, decimal: 1.0},
		{name: "decimal trailing point", raw: "3.", kind: KindDecimal, decimal: 3.0},
		{name: "decimal trailing point two digits", raw: "12.", kind: KindDecimal, decimal: 12.0},
		{name: "moneyline positive", raw: "+350", kind: KindMoneyline, decimal: 4.5},
		{name: "moneyline negative", raw: "-200", kind: KindMoneyline, decimal: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Parse(tt.raw)
			require.True(t, ok, "expected %q to parse", tt.raw)
			assert.Equal(t, tt.kind, q.Kind)
			assert.InDelta(t, tt.decimal, q.Decimal, 1e-12)
			assert.InDelta(t, 1.0/tt.decimal, q.Implied, 1e-12)
			assert.Equal(t, tt.raw, q.Raw)
		})
	}
}

func TestParseFractionalKeepsTerms(t *testing.T) {
	q, ok := Parse("7/2")
	require.True(t, ok)
	assert.Equal(t, 7, q.Numerator)
	assert.Equal(t, 2, q.Denominator)

	q, ok = Parse("6")
	require.True(t, ok)
	assert.Equal(t, 6, q.Numerator)
	assert.Equal(t, 1, q.Denominator)
}

func TestParseRejectsScratchesAndJunk(t *testing.T) {
	for _, raw := range []string{
		"", "   ", "—", "SCR", "scr", "SCRATCHED", "WD", "WITHDRAWN",
		"5/0", "0", "+0", "0.5", "abc", "7/2x", "3.5.1", "-", "N/A",
		".", "0.", "3..",
	} {
		_, ok := Parse(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestParseZeroNumeratorFraction(t *testing.T) {
	q, ok := Parse("0/1")
	require.True(t, ok)
	assert.Equal(t, 1.0, q.Decimal)
	assert.Equal(t, 1.0, q.Implied)
}

func TestFormatFractional(t *testing.T) {
	tests := []struct {
		decimal  float64
		expected string
	}{
		{decimal: 3.5, expected: "5-2"},
		{decimal: 4.5, expected: "7-2"},
		{decimal: 7.0, expected: "6-1"},
		{decimal: 2.0, expected: "1-1"},
		{decimal: 1.5, expected: "1-2"},
		{decimal: 13.0, expected: "12-1"},
		{decimal: 1.0, expected: "1-1"},
		{decimal: 15.7, expected: "14.7"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFractional(tt.decimal), "decimal %v", tt.decimal)
	}
}
