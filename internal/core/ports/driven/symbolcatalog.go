package driven

import "github.com/cboldwyn/dc-label/internal/core/domain"

// SymbolCatalog supplies the fixed catalog of weekly symbol graphics.
// The catalog is a versioned external resource; the engine only ever
// asks for a slot, never the bytes behind it.
type SymbolCatalog interface {
	// Symbol returns the graphic for a slot in [1, domain.SymbolSlots].
	// Out-of-range slots return domain.ErrUnknownSlot.
	Symbol(slot int) (domain.Symbol, error)

	// Symbols returns the full catalog in slot order.
	Symbols() []domain.Symbol
}
