package i

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a SaveStore when a key holds no value.
var ErrNotFound = errors.New("key not found")

// SaveStore is a key-value store for persisted mazes.
type SaveStore interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}
