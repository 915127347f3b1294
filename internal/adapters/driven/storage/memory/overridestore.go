// Package memory provides in-memory implementations of driven port
// interfaces for testing.
package memory

import (
	"context"
	"sync"

	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure OverrideStore implements the interface.
var _ driven.OverrideStore = (*OverrideStore)(nil)

// OverrideStore is an in-memory implementation of driven.OverrideStore.
type OverrideStore struct {
	mu        sync.RWMutex
	overrides map[string]int
}

// NewOverrideStore creates a new in-memory override store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		overrides: make(map[string]int),
	}
}

// GetOverride returns the override for a package label.
func (s *OverrideStore) GetOverride(_ context.Context, packageLabel string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, ok := s.overrides[packageLabel]
	return count, ok, nil
}

// SetOverride stores or replaces an override.
func (s *OverrideStore) SetOverride(_ context.Context, packageLabel string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[packageLabel] = count
	return nil
}

// ClearOverride removes an override.
func (s *OverrideStore) ClearOverride(_ context.Context, packageLabel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, packageLabel)
	return nil
}

// ListOverrides returns a copy of all stored overrides.
func (s *OverrideStore) ListOverrides(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out, nil
}
