package kvstore

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value    string
	expireAt time.Time
}

// MemoryStore is an in-process Store used in tests and local development.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]memoryEntry)}
}

func (s *MemoryStore) get(key string) (memoryEntry, bool) {
	e, ok := s.data[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expireAt.IsZero() && time.Now().After(e.expireAt) {
		delete(s.data, key)
		return memoryEntry{}, false
	}
	return e, true
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.get(key)
	if !ok {
		return "", ErrNotFound
	}
	return e.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	}
	s.data[key] = e
	return nil
}

func (s *MemoryStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	if e, ok := s.get(key); ok {
		n, _ = strconv.ParseInt(e.value, 10, 64)
	}
	n++
	e := memoryEntry{value: strconv.FormatInt(n, 10)}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	}
	s.data[key] = e
	return n, nil
}
