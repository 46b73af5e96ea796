// Package bridge carries municipality snapshots between the list and
// detail screens. The two screens share no store; the hand-off is a
// full-copy serialize/deserialize through a session-scoped key/value
// backend.
package bridge

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrKeyNotFound = errors.New("bridge: key not found")

// Store is the session-scoped key/value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryStore is the default in-process backend. Expired entries are
// dropped lazily on read.
type memoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memoryEntry
}

// NewMemoryStore builds an in-process store. A non-positive ttl means
// entries never expire.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(s.data, key)
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(e.payload))
	copy(out, e.payload)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{payload: make([]byte, len(value))}
	copy(e.payload, value)
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}
	s.data[key] = e
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
