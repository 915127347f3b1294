package domain

import "time"

// SymbolSlots is the size of the weekly symbol catalog.
const SymbolSlots = 18

// symbolNames maps slot-1 to the catalog symbol name. The engine never
// touches the bitmap bytes; names exist for display and debugging.
var symbolNames = [SymbolSlots]string{
	"anchor", "bell", "clover", "crescent", "diamond", "feather",
	"gear", "heart", "hex", "key", "leaf", "lightning",
	"mountain", "snowflake", "spiral", "star", "sun", "wave",
}

// SlotName returns the catalog name for a slot in [1, SymbolSlots].
// Out-of-range slots return the empty string.
func SlotName(slot int) string {
	if slot < 1 || slot > SymbolSlots {
		return ""
	}
	return symbolNames[slot-1]
}

// WeekSlotForTime maps a time to a symbol slot in [1, SymbolSlots]
// using its ISO week number. Consecutive ISO weeks map to consecutive
// slots, wrapping after SymbolSlots.
func WeekSlotForTime(t time.Time) int {
	_, week := t.ISOWeek()
	return (week-1)%SymbolSlots + 1
}

// WeekSlot resolves a creation timestamp to a symbol slot. An absent or
// unparsable timestamp falls back to now in UTC, the fixed reference
// zone for reproducible batches.
func WeekSlot(createdAt string, now time.Time) int {
	if t, ok := ParseTimestamp(createdAt); ok {
		return WeekSlotForTime(t)
	}
	return WeekSlotForTime(now.UTC())
}

// Symbol is one slot of the weekly symbol catalog: a named, fixed-size
// monochrome graphic pre-encoded for the output protocol. The payload
// is opaque to the engine.
type Symbol struct {
	// Slot is the 1-based catalog index.
	Slot int

	// Name is the human-readable symbol name.
	Name string

	// Payload is the raster-graphic command body, ready for placement.
	Payload string

	// Width and Height are the pixel footprint in device units.
	Width  int
	Height int
}
