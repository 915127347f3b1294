// Package tui provides an interactive terminal user interface for
// reviewing the merged record set and generating label batches. It
// implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"errors"

	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// Validation errors for missing ports.
var (
	ErrMissingMergeService    = errors.New("tui: merge service is required")
	ErrMissingRecordService   = errors.New("tui: record service is required")
	ErrMissingGenerateService = errors.New("tui: generation service is required")
	ErrMissingBatchSink       = errors.New("tui: batch sink is required")
)

// Ports aggregates the port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Merge turns the export files into canonical records.
	Merge driving.MergeService

	// Records manages label overrides.
	Records driving.RecordService

	// Generate produces label batches.
	Generate driving.GenerationService

	// Sink delivers generated batches.
	Sink driven.BatchSink
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Merge == nil {
		return ErrMissingMergeService
	}
	if p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Generate == nil {
		return ErrMissingGenerateService
	}
	if p.Sink == nil {
		return ErrMissingBatchSink
	}
	return nil
}
