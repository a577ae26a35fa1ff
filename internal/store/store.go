package store

import (
	"context"
)

// Store is a small string key/value store for client-side preferences:
// the persisted session and the dark-mode flag.
type Store interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been set or was deleted.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
