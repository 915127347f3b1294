package driven

import "context"

// OverrideStore persists per-package label overrides between
// generation runs. Keys are package labels; values are document
// counts. Zero is a meaningful value (suppress the record); absence
// means "follow the global mode".
type OverrideStore interface {
	// GetOverride returns the override for a package label, and
	// whether one exists.
	GetOverride(ctx context.Context, packageLabel string) (int, bool, error)

	// SetOverride stores or replaces an override.
	SetOverride(ctx context.Context, packageLabel string, count int) error

	// ClearOverride removes an override. Clearing a missing override
	// is not an error.
	ClearOverride(ctx context.Context, packageLabel string) error

	// ListOverrides returns all stored overrides keyed by package
	// label.
	ListOverrides(ctx context.Context) (map[string]int, error)
}
