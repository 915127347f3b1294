package domain

import (
	"fmt"
	"strings"
)

// createdDateFormat renders the "Created:" line as MM/DD/YYYY.
const createdDateFormat = "01/02/2006"

// FormatCaseQuantity renders the quantity line. Nil means the case
// size is unknown; an integral value drops the decimal point.
func FormatCaseQuantity(qty *float64) string {
	if qty == nil {
		return "Case Qty: N/A"
	}
	if IsIntegral(*qty) {
		return fmt.Sprintf("Case Qty: %d", int64(*qty))
	}
	return fmt.Sprintf("Case Qty: %.1f", *qty)
}

// ComposeLabel assembles the document for one physical label from a
// canonical record, the quantity to display, and the resolved weekly
// symbol. Fields with no data are omitted, not rendered blank, so
// document length varies.
//
// The draw order is fixed: inverted brand bar with right-aligned
// category, up to two product-name lines, the package identifier
// centred left of the QR region, the created date, the QR symbol, the
// batch number, the weekly symbol at bottom-middle, and the
// right-aligned quantity.
func ComposeLabel(rec CanonicalLabelRecord, displayQty *float64, symbol Symbol) *LabelDocument {
	doc := &LabelDocument{}
	maxChars := MaxChars(FontLarge)

	// Brand bar, full width, inverted.
	doc.Add(RectField{X: 0, Y: BrandBarY, Width: CanvasWidth, Height: BrandBarHeight, Thickness: BrandBarHeight})

	if brand := Truncate(rec.Brand, maxChars); brand != "" {
		doc.Add(FieldReverse{})
		doc.Add(FontSelect{Size: FontLarge})
		y := BrandBarY + (BrandBarHeight-FontLarge)/2
		doc.Add(TextField{X: LeftMargin, Y: y, Data: brand, Reversed: true})
	}

	if rec.Category != "" {
		doc.Add(FontSelect{Size: FontMedium})
		y := BrandBarY + (BrandBarHeight-FontMedium)/2
		doc.Add(TextField{X: RightAlignX(rec.Category, FontMedium), Y: y, Data: rec.Category, Reversed: true})
	}

	// Product name, wrapped to at most two lines. Falls back to the
	// raw name when the brand split left nothing.
	product := rec.ProductNameClean
	if product == "" {
		product = rec.ProductNameRaw
	}
	doc.Add(FontSelect{Size: FontLarge})
	y := ProductY
	for _, line := range WrapTwoLines(product, maxChars) {
		doc.Add(TextField{X: LeftMargin, Y: y, Data: line})
		y += ProductLinePitch
	}

	// Package identifier, large, centred in the region left of the QR.
	qrData := strings.TrimSpace(rec.PackageLabel)
	if qrData != "" {
		doc.Add(FontSelect{Size: FontUID})
		doc.Add(TextField{X: CenterLeftOfQRX(qrData, FontUID), Y: UIDY, Data: qrData})
	}

	// Created date, centred in the same region, omitted when the
	// timestamp does not parse.
	if t, ok := ParseTimestamp(rec.CreatedAtFull); ok {
		text := "Created: " + t.Format(createdDateFormat)
		doc.Add(FontSelect{Size: FontSmallPlus})
		doc.Add(TextField{X: CenterLeftOfQRX(text, FontSmallPlus), Y: DateY, Data: text})
	}

	if qrData != "" {
		doc.Add(QRField{X: QRX, Y: QRY, Magnification: QRMagnification, Data: qrData})
	}

	if rec.BatchNo != "" {
		doc.Add(FontSelect{Size: FontLargePlus})
		doc.Add(TextField{X: LeftMargin, Y: BottomY, Data: "Batch: " + rec.BatchNo})
	}

	// Weekly symbol, centred at the bottom-middle.
	if symbol.Payload != "" {
		x := (CanvasWidth - symbol.Width) / 2
		sy := CanvasHeight - symbol.Height - SymbolBottomPad
		doc.Add(GraphicField{X: x, Y: sy, Payload: symbol.Payload})
	}

	qtyText := FormatCaseQuantity(displayQty)
	doc.Add(FontSelect{Size: FontLargePlus})
	doc.Add(TextField{X: RightAlignX(qtyText, FontLargePlus), Y: BottomY, Data: qtyText})

	return doc
}
