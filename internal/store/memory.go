package store

import (
	"context"
	"sync"
)

// memoryKV is the ephemeral map-backed [KV] used by the "memory" backend and
// by tests. Nothing survives process exit.
type memoryKV struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryKV returns an empty in-memory key-value backend.
func NewMemoryKV() KV {
	return &memoryKV{records: make(map[string][]byte)}
}

func (s *memoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *memoryKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make([]byte, len(value))
	copy(raw, value)
	s.records[key] = raw
	return nil
}

func (s *memoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

func (s *memoryKV) Close() error {
	return nil
}
