package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value      []byte
	expiration int64
}

// MemoryStore es un store en memoria con TTL por clave. Sirve para
// correr la API sin Redis (REDIS_ADDR vacío) y para los tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryItem)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().UnixNano() > item.expiration {
		// expirado: se trata igual que una clave inexistente
		return nil, false, nil
	}
	return item.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryItem{
		value:      val,
		expiration: time.Now().Add(ttl).UnixNano(),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
