package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.KeyValueStore = (*InMemoryStore)(nil)

type InMemoryStore struct {
	store map[string]string

	mu sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		store: make(map[string]string),
	}
}

func (r *InMemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.store[key]
	return value, ok, nil
}

func (r *InMemoryStore) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}
