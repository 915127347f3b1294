package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// Ensure GenerateService implements the interface.
var _ driving.GenerationService = (*GenerateService)(nil)

// GenerateService runs the batch generator: it applies per-record
// overrides, establishes the emission order, composes documents, and
// derives the output filename.
type GenerateService struct {
	catalog driven.SymbolCatalog
	runs    driven.RunStore
	now     func() time.Time
}

// NewGenerateService creates a new generation service. The run store
// may be nil; runs are then not recorded.
func NewGenerateService(catalog driven.SymbolCatalog, runs driven.RunStore) *GenerateService {
	return &GenerateService{
		catalog: catalog,
		runs:    runs,
		now:     time.Now,
	}
}

// labelPlan decides how many documents a record emits and what
// quantity each shows. A non-empty reason means zero documents.
func labelPlan(rec domain.CanonicalLabelRecord, mode domain.Mode) (count int, qty *float64, reason string) {
	if rec.Quantity <= 0 {
		return 0, nil, "quantity is zero or negative"
	}

	if rec.LabelOverride != nil {
		if *rec.LabelOverride == 0 {
			return 0, nil, "suppressed by override"
		}
		return *rec.LabelOverride, rec.CaseQuantity(), ""
	}

	switch mode {
	case domain.ModePackage:
		return 1, rec.CaseQuantity(), ""
	default: // domain.ModeCase
		if !rec.HasCaseData() {
			return 0, nil, "missing units per case"
		}
		// Every case label shows the full case size, including the
		// partial last case.
		return rec.CaseLabelsNeeded, rec.CaseQuantity(), ""
	}
}

// Generate produces the batch for a record set. Records are processed
// in ascending package-label order, so shuffled input yields
// byte-identical output.
func (s *GenerateService) Generate(ctx context.Context, records []domain.CanonicalLabelRecord, opts driving.GenerateOptions) (*driving.GenerateResult, error) {
	if s.catalog == nil {
		return nil, errors.New("symbol catalog not configured")
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unknown label mode %q: %w", opts.Mode, domain.ErrInvalidInput)
	}

	now := opts.Now
	if now.IsZero() {
		now = s.now()
	}

	sorted := make([]domain.CanonicalLabelRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PackageLabel < sorted[j].PackageLabel
	})

	var docs []string
	var skipped []driving.SkippedRecord

	for _, rec := range sorted {
		count, qty, reason := labelPlan(rec, opts.Mode)
		if count == 0 {
			skipped = append(skipped, driving.SkippedRecord{
				PackageLabel: rec.PackageLabel,
				Reason:       reason,
			})
			continue
		}

		symbol, err := s.catalog.Symbol(domain.WeekSlot(rec.CreatedAtFull, now))
		if err != nil {
			return nil, fmt.Errorf("resolving weekly symbol for %s: %w", rec.PackageLabel, err)
		}

		encoded := domain.ComposeLabel(rec, qty, symbol).Encode()
		for i := 0; i < count; i++ {
			docs = append(docs, encoded)
		}
	}

	if len(docs) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	result := &driving.GenerateResult{
		Content:  strings.Join(docs, "\n"),
		Filename: domain.BatchFilename(domain.UniqueBrands(sorted), opts.Mode, now),
		Labels:   len(docs),
		Skipped:  skipped,
	}

	if s.runs != nil {
		run := domain.BatchRun{
			Filename:  result.Filename,
			Mode:      opts.Mode,
			Labels:    result.Labels,
			Skipped:   len(result.Skipped),
			CreatedAt: now,
		}
		if err := s.runs.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("recording batch run: %w", err)
		}
	}

	return result, nil
}

// Preview composes the documents one record would contribute under the
// given options, without assembling a batch. A record that would be
// skipped yields an empty slice.
func (s *GenerateService) Preview(_ context.Context, record domain.CanonicalLabelRecord, opts driving.GenerateOptions) ([]string, error) {
	if s.catalog == nil {
		return nil, errors.New("symbol catalog not configured")
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unknown label mode %q: %w", opts.Mode, domain.ErrInvalidInput)
	}

	now := opts.Now
	if now.IsZero() {
		now = s.now()
	}

	count, qty, _ := labelPlan(record, opts.Mode)
	if count == 0 {
		return nil, nil
	}

	symbol, err := s.catalog.Symbol(domain.WeekSlot(record.CreatedAtFull, now))
	if err != nil {
		return nil, fmt.Errorf("resolving weekly symbol: %w", err)
	}

	encoded := domain.ComposeLabel(record, qty, symbol).Encode()
	docs := make([]string, count)
	for i := range docs {
		docs[i] = encoded
	}
	return docs, nil
}
