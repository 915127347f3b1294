package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.BatchRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// SaveRun stores one batch run.
func (s *RunStore) SaveRun(_ context.Context, run domain.BatchRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		run.ID = "run-" + strconv.Itoa(len(s.runs)+1)
	}
	s.runs = append(s.runs, run)
	return nil
}

// ListRuns returns stored runs, most recent first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.BatchRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BatchRun, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.runs[i])
	}
	return out, nil
}
