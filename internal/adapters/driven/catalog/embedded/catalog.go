// Package embedded provides the built-in weekly symbol catalog. The
// eighteen label graphics ship inside the binary as ZPL ^GFA commands,
// one 64x64 one-bit raster per rotation slot.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.SymbolCatalog = (*Catalog)(nil)

// symbolFS holds the raster files, one per slot, named NN_name.grf.
//
//go:embed symbols/*.grf
var symbolFS embed.FS

// symbolWidth and symbolHeight are fixed by the catalog format.
const (
	symbolWidth  = 64
	symbolHeight = 64
)

// Catalog serves the embedded symbol set.
type Catalog struct {
	symbols []domain.Symbol
}

// NewCatalog loads and validates the embedded symbol set. It fails if
// any slot is missing, duplicated, or named differently than the
// rotation expects.
func NewCatalog() (*Catalog, error) {
	entries, err := fs.ReadDir(symbolFS, "symbols")
	if err != nil {
		return nil, fmt.Errorf("reading symbol directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".grf") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) != domain.SymbolSlots {
		return nil, fmt.Errorf("symbol catalog has %d graphics, want %d", len(names), domain.SymbolSlots)
	}

	symbols := make([]domain.Symbol, domain.SymbolSlots)
	for i, name := range names {
		slot := i + 1

		var fileSlot int
		var fileName string
		base := strings.TrimSuffix(name, ".grf")
		if _, err := fmt.Sscanf(base, "%d_", &fileSlot); err != nil {
			return nil, fmt.Errorf("malformed symbol filename %s: %w", name, err)
		}
		if idx := strings.IndexByte(base, '_'); idx >= 0 {
			fileName = base[idx+1:]
		}

		if fileSlot != slot {
			return nil, fmt.Errorf("symbol file %s fills slot %d, want %d", name, fileSlot, slot)
		}
		if want := domain.SlotName(slot); fileName != want {
			return nil, fmt.Errorf("symbol file %s names slot %d %q, want %q", name, slot, fileName, want)
		}

		payload, err := fs.ReadFile(symbolFS, "symbols/"+name)
		if err != nil {
			return nil, fmt.Errorf("reading symbol %s: %w", name, err)
		}

		cmd := strings.TrimSpace(string(payload))
		if !strings.HasPrefix(cmd, "^GFA,") {
			return nil, fmt.Errorf("symbol %s is not a ^GFA command", name)
		}

		symbols[i] = domain.Symbol{
			Slot:    slot,
			Name:    fileName,
			Payload: cmd,
			Width:   symbolWidth,
			Height:  symbolHeight,
		}
	}

	return &Catalog{symbols: symbols}, nil
}

// Symbol returns the graphic for a slot in [1, domain.SymbolSlots].
func (c *Catalog) Symbol(slot int) (domain.Symbol, error) {
	if slot < 1 || slot > domain.SymbolSlots {
		return domain.Symbol{}, fmt.Errorf("slot %d: %w", slot, domain.ErrUnknownSlot)
	}
	return c.symbols[slot-1], nil
}

// Symbols returns the full catalog in slot order.
func (c *Catalog) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}
