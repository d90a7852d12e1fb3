// Package blob provides key/value backends for the check-in store.
package blob

import (
	"context"
	"slices"
	"sync"

	"github.com/rpggio/readycheck/internal/repository"
)

// Memory is an in-process blob store. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return slices.Clone(v), nil
}

// Set stores value under key.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
	return nil
}

var _ repository.BlobRepository = (*Memory)(nil)
