package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-process store. It is the default when no
// DATABASE_URL is configured and is what the handler tests run against.
type Memory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

func NewMemory() *Memory {
	return &Memory{records: make(map[uuid.UUID]*Record)}
}

func (m *Memory) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *Memory) List(_ context.Context, limit int) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		out = append(out, &cp)
	}
	// Newest first, matching the Postgres ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
