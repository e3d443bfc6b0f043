package history

import (
	"slices"
	"sync"
)

// MemoryStore is an in-memory history store for tests and short-lived
// processes. Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]Record // tree -> records in sequence order
	closed  bool
}

// NewMemoryStore creates a new in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]Record),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(rec Record) (Record, error) {
	if rec.Tree == "" {
		return Record{}, ErrTreeRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Record{}, ErrStoreClosed
	}

	recs := m.records[rec.Tree]
	rec.Sequence = 1
	if n := len(recs); n > 0 {
		rec.Sequence = recs[n-1].Sequence + 1
	}
	m.records[rec.Tree] = append(recs, rec)
	return rec, nil
}

// Latest implements Store.
func (m *MemoryStore) Latest(tree string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Record{}, ErrStoreClosed
	}

	recs := m.records[tree]
	if len(recs) == 0 {
		return Record{}, ErrNotFound
	}
	return recs[len(recs)-1], nil
}

// List implements Store.
func (m *MemoryStore) List(tree string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	recs := slices.Clone(m.records[tree])
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

// Counts implements Store.
func (m *MemoryStore) Counts(tree string) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	counts := make(map[string]int)
	for _, rec := range m.records[tree] {
		counts[rec.Status]++
	}
	return counts, nil
}

// DeleteTree implements Store.
func (m *MemoryStore) DeleteTree(tree string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.records, tree)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.records = nil
	return nil
}
