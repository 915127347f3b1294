package domain

import (
	"fmt"
	"strings"
)

// Instruction is a single absolutely-positioned drawing command in the
// label protocol. Each instruction encodes to exactly one output line.
type Instruction interface {
	encode() string
}

// RectField draws a filled rectangle.
type RectField struct {
	X, Y          int
	Width, Height int
	// Thickness fills the rectangle when equal to Height.
	Thickness int
}

func (r RectField) encode() string {
	return fmt.Sprintf("^FO%d,%d^GB%d,%d,%d^FS", r.X, r.Y, r.Width, r.Height, r.Thickness)
}

// FontSelect selects the default font at the given size for subsequent
// text fields.
type FontSelect struct {
	Size int
}

func (f FontSelect) encode() string {
	return fmt.Sprintf("^CF0,%d", f.Size)
}

// FieldReverse marks the next field for inverted (white-on-black)
// printing.
type FieldReverse struct{}

func (FieldReverse) encode() string {
	return "^FR"
}

// TextField places text at an absolute origin. Reversed text prints
// inverted, for use over a filled rectangle.
type TextField struct {
	X, Y     int
	Data     string
	Reversed bool
}

func (t TextField) encode() string {
	if t.Reversed {
		return fmt.Sprintf("^FO%d,%d^FR^FD%s^FS", t.X, t.Y, t.Data)
	}
	return fmt.Sprintf("^FO%d,%d^FD%s^FS", t.X, t.Y, t.Data)
}

// QRField places a QR symbol encoding Data.
type QRField struct {
	X, Y          int
	Magnification int
	Data          string
}

func (q QRField) encode() string {
	return fmt.Sprintf("^FO%d,%d^BQN,2,%d^FDQA,%s^FS", q.X, q.Y, q.Magnification, q.Data)
}

// GraphicField places a pre-encoded raster graphic. The payload is the
// complete raster command body supplied by the symbol catalog.
type GraphicField struct {
	X, Y    int
	Payload string
}

func (g GraphicField) encode() string {
	return fmt.Sprintf("^FO%d,%d%s^FS", g.X, g.Y, g.Payload)
}

// LabelDocument is the ordered instruction sequence for one physical
// label. Immutable once composed; a batch concatenates documents
// verbatim.
type LabelDocument struct {
	instructions []Instruction
}

// Add appends an instruction in draw order.
func (d *LabelDocument) Add(in Instruction) {
	d.instructions = append(d.instructions, in)
}

// Len returns the number of instructions, excluding the start and end
// markers.
func (d *LabelDocument) Len() int {
	return len(d.instructions)
}

// Instructions returns the instruction sequence for inspection.
func (d *LabelDocument) Instructions() []Instruction {
	return d.instructions
}

// Encode renders the document as protocol text: the start marker, one
// instruction per line, and the end marker.
func (d *LabelDocument) Encode() string {
	lines := make([]string, 0, len(d.instructions)+2)
	lines = append(lines, "^XA")
	for _, in := range d.instructions {
		lines = append(lines, in.encode())
	}
	lines = append(lines, "^XZ")
	return strings.Join(lines, "\n")
}
