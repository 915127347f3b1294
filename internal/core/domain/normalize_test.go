package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBrand_SpacedDelimiter(t *testing.T) {
	brand, rest := SplitBrand("Camino - Strawberry Sunset")
	assert.Equal(t, "Camino", brand)
	assert.Equal(t, "Strawberry Sunset", rest)
}

func TestSplitBrand_NoDelimiter(t *testing.T) {
	brand, rest := SplitBrand("NoDelimiterName")
	assert.Equal(t, "", brand)
	assert.Equal(t, "NoDelimiterName", rest)
}

func TestSplitBrand_BareHyphen(t *testing.T) {
	// Split on the first hyphen only; the remainder keeps the rest.
	brand, rest := SplitBrand("A-B-C")
	assert.Equal(t, "A", brand)
	assert.Equal(t, "B-C", rest)
}

func TestSplitBrand_SpacedBeatsBare(t *testing.T) {
	brand, rest := SplitBrand("Alpha-One - Berry")
	assert.Equal(t, "Alpha-One", brand)
	assert.Equal(t, "Berry", rest)
}

func TestSplitBrand_Empty(t *testing.T) {
	brand, rest := SplitBrand("")
	assert.Equal(t, "", brand)
	assert.Equal(t, "", rest)

	brand, rest = SplitBrand("   ")
	assert.Equal(t, "", brand)
	assert.Equal(t, "", rest)
}

func TestSplitBrand_TrimsParts(t *testing.T) {
	brand, rest := SplitBrand("  Camino -  Midnight Blueberry ")
	assert.Equal(t, "Camino", brand)
	assert.Equal(t, "Midnight Blueberry", rest)
}

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  float64
		want float64
	}{
		{"integral decimal narrows", "12.0", 0, 12},
		{"plain integer", "25", 0, 25},
		{"fractional", "2.5", 0, 2.5},
		{"empty uses default", "", 0, 0},
		{"whitespace uses default", "   ", 7, 7},
		{"garbage uses default", "abc", 3, 3},
		{"nan uses default", "NaN", 0, 0},
		{"inf uses default", "+Inf", 0, 0},
		{"trims whitespace", " 50 ", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceNumeric(tt.raw, tt.def))
		})
	}
}

func TestFormatNumeric(t *testing.T) {
	assert.Equal(t, "12", FormatNumeric(12.0))
	assert.Equal(t, "2.5", FormatNumeric(2.5))
	assert.Equal(t, "0", FormatNumeric(0))
}

func TestParseTimestamp_DistruFormat(t *testing.T) {
	ts, ok := ParseTimestamp("2024-09-09 17:32:45 UTC")
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.September, ts.Month())
	assert.Equal(t, 9, ts.Day())
}

func TestParseTimestamp_Unparsable(t *testing.T) {
	_, ok := ParseTimestamp("not a timestamp")
	assert.False(t, ok)

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
}

func TestToDateOnly(t *testing.T) {
	d := ToDateOnly("2024-09-09 17:32:45")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC), *d)
}

func TestToDateOnly_UnparsableIsAbsent(t *testing.T) {
	assert.Nil(t, ToDateOnly("last tuesday"))
	assert.Nil(t, ToDateOnly(""))
}
