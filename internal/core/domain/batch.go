package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the global generation strategy.
type Mode string

const (
	// ModePackage emits exactly one document per record.
	ModePackage Mode = "package"

	// ModeCase emits one document per case implied by the quantity
	// split, each showing the full case size.
	ModeCase Mode = "case"
)

// Valid reports whether m is a known generation mode.
func (m Mode) Valid() bool {
	return m == ModePackage || m == ModeCase
}

// filenamePart is the mode fragment used in derived filenames.
func (m Mode) filenamePart() string {
	if m == ModePackage {
		return "per_package"
	}
	return "per_case"
}

// filenameStamp timestamps generated batch filenames.
const filenameStamp = "20060102_150405"

// truncN shortens s to at most n bytes.
func truncN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// UniqueBrands returns the distinct non-empty brands across records,
// in first-appearance order.
func UniqueBrands(records []CanonicalLabelRecord) []string {
	seen := make(map[string]bool)
	var brands []string
	for _, r := range records {
		if r.Brand == "" || seen[r.Brand] {
			continue
		}
		seen[r.Brand] = true
		brands = append(brands, r.Brand)
	}
	return brands
}

// BatchFilename derives the output filename for a generation run. A
// single brand is used verbatim (truncated), two or three brands are
// joined and each truncated, four or more collapse to a count
// placeholder.
func BatchFilename(brands []string, mode Mode, ts time.Time) string {
	var brandPart string
	switch {
	case len(brands) == 1:
		brandPart = truncN(strings.ReplaceAll(brands[0], " ", "_"), 20)
	case len(brands) <= 3:
		parts := make([]string, 0, len(brands))
		for _, b := range brands {
			parts = append(parts, truncN(strings.ReplaceAll(b, " ", "_"), 10))
		}
		brandPart = truncN(strings.Join(parts, "_"), 30)
	default:
		brandPart = fmt.Sprintf("Multiple_%d_brands", len(brands))
	}

	return fmt.Sprintf("dc_labels_%s_%s_%s.zpl", brandPart, mode.filenamePart(), ts.Format(filenameStamp))
}

// ExportFilename derives the filename for a canonical-dataset CSV
// export.
func ExportFilename(ts time.Time) string {
	return fmt.Sprintf("dc_packages_%s.csv", ts.Format(filenameStamp))
}

// BatchRun records one completed generation run for history.
type BatchRun struct {
	ID        string
	Filename  string
	Mode      Mode
	Labels    int
	Skipped   int
	CreatedAt time.Time
}
