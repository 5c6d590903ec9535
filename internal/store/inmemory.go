package store

import (
	"context"
	"sync"
)

// InMemoryStore is a Store kept entirely in process memory; nothing
// survives a restart. Concurrent use is safe, but as everywhere in this
// design a single writer at a time is assumed per key.
type InMemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]byte)}
}

func (s *InMemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *InMemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Update runs fn against a shadow copy of the data and swaps it in only
// when fn succeeds, so a failed batch leaves the store untouched.
func (s *InMemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	s.mu.Lock()
	shadow := NewInMemoryStore()
	for k, v := range s.data {
		shadow.data[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx, shadow); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = shadow.data
	s.mu.Unlock()
	return nil
}
