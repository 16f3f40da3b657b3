package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStorage — хранилище в памяти, без персистентности.
// Используется в тестах вместо внешнего носителя.
type MemoryStorage struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{collections: make(map[string][]json.RawMessage)}
}

func (s *MemoryStorage) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.collections[collection]
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

func (s *MemoryStorage) Save(_ context.Context, collection string, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	s.collections[collection] = stored
	return nil
}
