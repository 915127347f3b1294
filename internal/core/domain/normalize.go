package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// CoerceNumeric converts a raw string field to a number. Whitespace is
// trimmed; empty input, unparsable input, NaN and infinities all
// collapse to def. It never fails.
func CoerceNumeric(raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// IsIntegral reports whether v is mathematically integral.
func IsIntegral(v float64) bool {
	return v == math.Trunc(v)
}

// FormatNumeric renders v as an integer when integral, otherwise as a
// plain decimal.
func FormatNumeric(v float64) string {
	if IsIntegral(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SplitBrand splits a full product name into brand and remainder.
// The first " - " is the preferred delimiter, a bare "-" the fallback.
// With no delimiter the brand is empty and the remainder is the whole
// name. Both parts are whitespace-trimmed.
func SplitBrand(name string) (brand, remainder string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if i := strings.Index(name, " - "); i >= 0 {
		return strings.TrimSpace(name[:i]), strings.TrimSpace(name[i+3:])
	}
	if i := strings.Index(name, "-"); i >= 0 {
		return strings.TrimSpace(name[:i]), strings.TrimSpace(name[i+1:])
	}
	return "", name
}

// timestampLayouts are tried in order by ParseTimestamp. The first two
// match the Distru export format.
var timestampLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ParseTimestamp parses a timestamp string on a best-effort basis.
// Returns false when no known layout matches.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToDateOnly projects a timestamp string to a date (midnight UTC).
// Unparsable input yields nil, not an error.
func ToDateOnly(raw string) *time.Time {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
