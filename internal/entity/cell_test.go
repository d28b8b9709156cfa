package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Cell
	}{
		{"empty", "", MissingCell()},
		{"whitespace only", "   ", MissingCell()},
		{"integer", "1700000000", IntCell(1700000000)},
		{"negative integer", "-42", IntCell(-42)},
		{"float", "1.23456", FloatCell(decimal.RequireFromString("1.23456"))},
		{"scientific", "1.2e3", FloatCell(decimal.RequireFromString("1.2e3"))},
		{"text", "Bullish Exit", TextCell("Bullish Exit")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCell(tt.raw)
			require.Equal(t, tt.expected.Kind(), got.Kind())
			if tt.expected.IsNumeric() {
				require.True(t, tt.expected.Decimal().Equal(got.Decimal()))
			} else {
				require.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCellMissingIsDistinct(t *testing.T) {
	m := MissingCell()
	require.True(t, m.IsMissing())
	require.NotEqual(t, m, IntCell(0))
	require.NotEqual(t, m, TextCell(""))
	require.Equal(t, "", m.String())
}

func TestCellRound(t *testing.T) {
	c := FloatCell(decimal.RequireFromString("1.23789"))
	rounded := c.Round(2)
	require.Equal(t, "1.24", rounded.Decimal().String())

	// rounding an already-rounded value is a no-op
	require.Equal(t, rounded, rounded.Round(2))

	// non-float cells pass through
	require.Equal(t, IntCell(7), IntCell(7).Round(2))
	require.Equal(t, TextCell("x"), TextCell("x").Round(2))
	require.True(t, MissingCell().Round(2).IsMissing())
}

func TestCellRoundHalfUp(t *testing.T) {
	// Decimal.Round is half away from zero, so .5 boundaries go up for
	// positive values.
	require.Equal(t, "1.24", FloatCell(decimal.RequireFromString("1.235")).Round(2).Decimal().String())
	require.Equal(t, "1.23", FloatCell(decimal.RequireFromString("1.2349")).Round(2).Decimal().String())
}
