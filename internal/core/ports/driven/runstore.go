package driven

import (
	"context"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// RunStore records completed generation runs.
type RunStore interface {
	// SaveRun stores one batch run.
	SaveRun(ctx context.Context, run domain.BatchRun) error

	// ListRuns returns stored runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.BatchRun, error)
}
