package subscription

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryHashStore is an in-process HashStore. Values are copied on the way in and out.
type MemoryHashStore struct {
	mu     sync.RWMutex
	tables map[string]map[string][]byte
}

// NewMemoryHashStore returns an empty MemoryHashStore.
func NewMemoryHashStore() *MemoryHashStore {
	return &MemoryHashStore{tables: make(map[string]map[string][]byte)}
}

func (m *MemoryHashStore) Set(_ context.Context, table, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[table]
	if !ok {
		t = make(map[string][]byte)
		m.tables[table] = t
	}
	t[field] = slices.Clone(value)
	return nil
}

func (m *MemoryHashStore) GetAll(_ context.Context, table string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte, len(m.tables[table]))
	for field, value := range maps.All(m.tables[table]) {
		out[field] = slices.Clone(value)
	}
	return out, nil
}

func (m *MemoryHashStore) Delete(_ context.Context, table, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tables[table], field)
	return nil
}

// Healthcheck always succeeds.
func (m *MemoryHashStore) Healthcheck(context.Context) error { return nil }
