package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory ObjectStore for tests and database-less dev
// runs.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte // key: bucket/key
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put stores the object and returns a synthetic URL.
func (s *MemoryStore) Put(_ context.Context, bucket, key, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[bucket+"/"+key] = append([]byte(nil), data...)
	return fmt.Sprintf("mem://%s/%s", bucket, key), nil
}

// Get returns a stored object. Test helper.
func (s *MemoryStore) Get(bucket, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[bucket+"/"+key]
	return data, ok
}
