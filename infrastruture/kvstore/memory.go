// Package kvstore provides SaveStore backends for persisted mazes.
package kvstore

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Memory keeps values in a map. It is safe for concurrent use.
type Memory struct {
	values map[string][]byte
	sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Put implements i.SaveStore.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.Lock()
	defer m.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Get implements i.SaveStore.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, i.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}
