package memory

import (
	"context"
	"sync"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

type KeyValueStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{data: make(map[string]map[string]string)}
}

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[namespace][key]
	return value, ok, nil
}

func (s *KeyValueStore) Set(ctx context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[namespace] == nil {
		s.data[namespace] = make(map[string]string)
	}
	s.data[namespace][key] = value
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.data[namespace]
	if values == nil {
		return nil
	}
	for _, key := range keys {
		delete(values, key)
	}
	if len(values) == 0 {
		delete(s.data, namespace)
	}
	return nil
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)
