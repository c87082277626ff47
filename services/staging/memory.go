package staging

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store, used when Redis is unavailable and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, deviceID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[stagedKey(deviceID, key)]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, deviceID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[stagedKey(deviceID, key)] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, deviceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, stagedKey(deviceID, key))
	return nil
}
