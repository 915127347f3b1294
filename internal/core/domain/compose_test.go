package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() CanonicalLabelRecord {
	return CanonicalLabelRecord{
		ProductNameRaw:   "Camino - Strawberry Sunset",
		Brand:            "Camino",
		ProductNameClean: "Strawberry Sunset",
		PackageLabel:     "1A406030002C881000003648",
		Quantity:         50,
		UnitsPerCase:     24,
		CaseLabelsNeeded: 3,
		BatchNo:          "ABC-123",
		Category:         "Edibles",
		CreatedAtFull:    "2024-09-09 17:32:45 UTC",
	}
}

func testSymbol() Symbol {
	return Symbol{
		Slot:    1,
		Name:    "anchor",
		Payload: "^GFA,512,512,8,00FF00FF",
		Width:   64,
		Height:  64,
	}
}

// TestComposeLabel_Golden pins the complete document for a fully
// populated record. Any change here changes printed output.
func TestComposeLabel_Golden(t *testing.T) {
	qty := 24.0
	doc := ComposeLabel(fullRecord(), &qty, testSymbol())

	want := strings.Join([]string{
		"^XA",
		"^FO0,8^GB812,50,50^FS",
		"^FR",
		"^CF0,32",
		"^FO20,17^FR^FDCamino^FS",
		"^CF0,24",
		"^FO708,21^FR^FDEdibles^FS",
		"^CF0,32",
		"^FO20,70^FDStrawberry Sunset^FS",
		"^CF0,46",
		"^FO47,180^FD1A406030002C881000003648^FS",
		"^CF0,22",
		"^FO219,220^FDCreated: 09/09/2024^FS",
		"^FO647,120^BQN,2,5^FDQA,1A406030002C881000003648^FS",
		"^CF0,28",
		"^FO20,360^FDBatch: ABC-123^FS",
		"^FO374,330^GFA,512,512,8,00FF00FF^FS",
		"^CF0,28",
		"^FO624,360^FDCase Qty: 24^FS",
		"^XZ",
	}, "\n")

	assert.Equal(t, want, doc.Encode())
}

// TestComposeLabel_Deterministic composes the same inputs twice and
// expects byte-identical output.
func TestComposeLabel_Deterministic(t *testing.T) {
	qty := 24.0
	a := ComposeLabel(fullRecord(), &qty, testSymbol())
	b := ComposeLabel(fullRecord(), &qty, testSymbol())
	assert.Equal(t, a.Encode(), b.Encode())
}

func TestComposeLabel_OmitsAbsentFields(t *testing.T) {
	rec := fullRecord()
	rec.Brand = ""
	rec.Category = ""
	rec.BatchNo = ""
	rec.CreatedAtFull = ""
	rec.PackageLabel = ""

	doc := ComposeLabel(rec, nil, Symbol{})
	out := doc.Encode()

	assert.NotContains(t, out, "^FR")
	assert.NotContains(t, out, "Batch:")
	assert.NotContains(t, out, "Created:")
	assert.NotContains(t, out, "^BQN")
	assert.NotContains(t, out, "^GFA")
	assert.Contains(t, out, "Case Qty: N/A")
	// Product name still present.
	assert.Contains(t, out, "^FO20,70^FDStrawberry Sunset^FS")
}

func TestComposeLabel_ProductFallsBackToRawName(t *testing.T) {
	rec := fullRecord()
	rec.ProductNameClean = ""

	doc := ComposeLabel(rec, nil, Symbol{})
	assert.Contains(t, doc.Encode(), "^FDCamino - Strawberry Sunset^FS")
}

func TestComposeLabel_WrapsLongProductName(t *testing.T) {
	rec := fullRecord()
	rec.ProductNameClean = "Midnight Blueberry Indica Enhanced Gummies One Hundred Milligram Twin Pack Limited"

	doc := ComposeLabel(rec, nil, Symbol{})
	out := doc.Encode()

	// Two product lines, the second advanced by the line pitch.
	assert.Contains(t, out, "^FO20,70^FD")
	assert.Contains(t, out, "^FO20,108^FD")
	assert.NotContains(t, out, "^FO20,146^FD")
}

func TestComposeLabel_UnparsableDateOmitted(t *testing.T) {
	rec := fullRecord()
	rec.CreatedAtFull = "sometime last week"

	doc := ComposeLabel(rec, nil, Symbol{})
	assert.NotContains(t, doc.Encode(), "Created:")
}

func TestComposeLabel_TruncatesLongBrand(t *testing.T) {
	rec := fullRecord()
	rec.Brand = strings.Repeat("B", 60)

	doc := ComposeLabel(rec, nil, Symbol{})
	assert.Contains(t, doc.Encode(), "^FD"+strings.Repeat("B", 50)+"...^FS")
}

func TestFormatCaseQuantity(t *testing.T) {
	integral := 24.0
	fractional := 12.5

	assert.Equal(t, "Case Qty: 24", FormatCaseQuantity(&integral))
	assert.Equal(t, "Case Qty: 12.5", FormatCaseQuantity(&fractional))
	assert.Equal(t, "Case Qty: N/A", FormatCaseQuantity(nil))
}

func TestComposeLabel_SymbolCentred(t *testing.T) {
	doc := ComposeLabel(fullRecord(), nil, testSymbol())

	var found bool
	for _, in := range doc.Instructions() {
		if g, ok := in.(GraphicField); ok {
			found = true
			assert.Equal(t, (CanvasWidth-64)/2, g.X)
			assert.Equal(t, CanvasHeight-64-SymbolBottomPad, g.Y)
		}
	}
	require.True(t, found, "expected a graphic instruction")
}
