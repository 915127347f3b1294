package driving

import (
	"context"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// MergeService turns the two raw exports into canonical label records.
type MergeService interface {
	// Process loads both tables and merges them. Missing required
	// columns or an empty table abort with an error before any record
	// is produced.
	Process(ctx context.Context, packagesPath, productsPath string) ([]domain.CanonicalLabelRecord, error)

	// Merge joins already-loaded tables. Output order matches the
	// packages input; later stages re-sort.
	Merge(packages, products domain.RawTable) ([]domain.CanonicalLabelRecord, error)
}
