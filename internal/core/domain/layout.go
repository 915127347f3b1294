package domain

import "strings"

// Label canvas geometry for a 4" x 2" label at 203 DPI, in dots.
const (
	DPI          = 203
	CanvasWidth  = 812 // 4.0in * 203dpi
	CanvasHeight = 406 // 2.0in * 203dpi

	LeftMargin  = 20
	RightMargin = 20
)

// Font sizes in dots.
const (
	FontUID       = 46 // package identifier, larger for visibility
	FontLarge     = 32 // brand, product name
	FontLargePlus = 28 // batch, quantity
	FontMedium    = 24 // category
	FontSmallPlus = 22 // created date
)

// Vertical positions in dots.
const (
	BrandBarY      = 8
	BrandBarHeight = 50
	ProductY       = 70
	UIDY           = 180
	DateY          = 220
	BottomY        = 360
	QRY            = 120

	// ProductLinePitch advances each wrapped product-name line,
	// int(FontLarge * 1.2).
	ProductLinePitch = 38

	// SymbolBottomPad keeps the weekly symbol off the label edge.
	SymbolBottomPad = 12
)

// QR sizing and placement.
const (
	QRMagnification = 5
	QRBoxSize       = QRMagnification * 30
	QRX             = CanvasWidth - QRBoxSize - 15
	QRGutter        = 20 // gap between centred text region and the QR block
)

// charWidthRatio approximates average glyph width as a fraction of
// font size. It is a fixed empirical constant, deliberately distinct
// from the coarser size/2 estimate used for alignment; the two must
// not be unified or every emitted coordinate changes.
const charWidthRatio = 0.45

// MaxLines caps the wrapped product name.
const MaxLines = 2

// Ellipsis terminates truncated fields.
const Ellipsis = "..."

// MaxChars estimates how many characters of the given font size fit in
// the usable canvas width. This estimate, not true glyph metrics,
// governs every wrap and truncate decision.
func MaxChars(fontSize int) int {
	usable := CanvasWidth - LeftMargin - RightMargin
	return int(float64(usable) / (float64(fontSize) * charWidthRatio))
}

// Truncate shortens s to maxChars characters, replacing the tail with
// an ellipsis. Strings within the limit pass through unchanged.
func Truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars-3] + Ellipsis
}

// WrapTwoLines word-wraps s into at most MaxLines lines of maxChars
// characters using greedy accumulation. A third line is discarded; the
// second line is then truncated if it alone exceeds maxChars. Input
// already within the limit returns as a single line, which makes the
// operation idempotent per line.
func WrapTwoLines(s string, maxChars int) []string {
	if len(s) <= maxChars {
		return []string{s}
	}

	var lines []string
	var current string

	for _, word := range strings.Fields(s) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if len(test) <= maxChars {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
		if len(lines[1]) > maxChars {
			lines[1] = Truncate(lines[1], maxChars)
		}
	}
	return lines
}

// EstimatedTextWidth is the coarse width estimate used for right and
// centre alignment: character count times half the font size, with the
// font size halved in integer arithmetic.
func EstimatedTextWidth(text string, fontSize int) int {
	return len(text) * (fontSize / 2)
}

// RightAlignX returns the x origin that right-aligns text against the
// right margin.
func RightAlignX(text string, fontSize int) int {
	return CanvasWidth - RightMargin - EstimatedTextWidth(text, fontSize)
}

// CenterLeftOfQRX centres text in the span between the left margin and
// the reserved QR region, clamping so the origin never crosses the
// left margin.
func CenterLeftOfQRX(text string, fontSize int) int {
	available := QRX - LeftMargin - QRGutter
	x := LeftMargin + (available-EstimatedTextWidth(text, fontSize))/2
	if x < LeftMargin {
		x = LeftMargin
	}
	return x
}
