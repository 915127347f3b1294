package driving

import (
	"context"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// RecordService manages the canonical record set between merge and
// generation: override editing and dataset export. The record set
// itself is caller-owned state; the service never holds it.
type RecordService interface {
	// ApplyOverrides returns a copy of records with stored label
	// overrides attached.
	ApplyOverrides(ctx context.Context, records []domain.CanonicalLabelRecord) ([]domain.CanonicalLabelRecord, error)

	// SetOverride stores a label override for a package. Negative
	// counts are invalid.
	SetOverride(ctx context.Context, packageLabel string, count int) error

	// ClearOverride removes a stored override.
	ClearOverride(ctx context.Context, packageLabel string) error

	// ListOverrides returns all stored overrides.
	ListOverrides(ctx context.Context) (map[string]int, error)

	// ExportCSV renders the canonical record set as CSV for the
	// export collaborator.
	ExportCSV(records []domain.CanonicalLabelRecord) string
}
