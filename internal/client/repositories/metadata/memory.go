package metadata

import (
	"context"
	"sync"
)

// MemoryRepository keeps values in process memory. Values are copied on the
// way in and out so callers cannot mutate stored state.
type MemoryRepository struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{m: make(map[string][]byte)}
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return append([]byte(nil), b...)
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.m[key] = clone(value)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) SetMany(_ context.Context, values map[string][]byte) error {
	r.mu.Lock()
	for k, v := range values {
		r.m[k] = clone(v)
	}
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.m, key)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]byte, len(r.m))
	for k, v := range r.m {
		out[k] = clone(v)
	}
	return out, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	r.m = make(map[string][]byte)
	r.mu.Unlock()
	return nil
}
