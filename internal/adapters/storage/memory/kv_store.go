package memory

import (
	"context"
	"strings"
	"sync"

	"medication-reminder/internal/ports/storage"
)

type kvStore struct {
	mu      sync.RWMutex
	bySpace map[string]map[string][]byte
}

// NewKVStore crea el store in-memory (modo dev y tests).
func NewKVStore() storage.KeyValueStore {
	return &kvStore{
		bySpace: make(map[string]map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.bySpace[namespace][key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	// copia: el caller no debe poder mutar lo guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	space, ok := s.bySpace[namespace]
	if !ok {
		space = make(map[string][]byte)
		s.bySpace[namespace] = space
	}
	v := make([]byte, len(value))
	copy(v, value)
	space[key] = v
	return nil
}

func (s *kvStore) Delete(ctx context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if space, ok := s.bySpace[namespace]; ok {
		delete(space, key)
	}
	return nil
}
