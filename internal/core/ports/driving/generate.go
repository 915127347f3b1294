package driving

import (
	"context"
	"time"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Mode is the global generation strategy. Per-record overrides
	// take precedence.
	Mode domain.Mode

	// Now overrides the run timestamp for reproducible filenames and
	// week-slot fallback. Zero means the wall clock.
	Now time.Time
}

// SkippedRecord explains why a record contributed zero documents.
type SkippedRecord struct {
	PackageLabel string
	Reason       string
}

// GenerateResult is the outcome of a generation run: the batch text,
// its derived filename, and the per-record warnings accumulated along
// the way.
type GenerateResult struct {
	// Content is the newline-joined concatenation of all documents,
	// in emission order.
	Content string

	// Filename is the derived output filename.
	Filename string

	// Labels is the number of documents in the batch.
	Labels int

	// Skipped lists records that produced no documents. These are
	// warnings, not errors.
	Skipped []SkippedRecord
}

// GenerationService produces label batches from canonical records.
type GenerationService interface {
	// Generate runs the batch generator over records. Records are
	// processed in ascending package-label order regardless of input
	// order. An empty batch returns domain.ErrEmptyBatch.
	Generate(ctx context.Context, records []domain.CanonicalLabelRecord, opts GenerateOptions) (*GenerateResult, error)

	// Preview composes the documents for a single record without
	// assembling a batch.
	Preview(ctx context.Context, record domain.CanonicalLabelRecord, opts GenerateOptions) ([]string, error)
}
