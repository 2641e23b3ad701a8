package kv

import "context"

// Store is the persistent key-value medium the platform state lives in.
// Implementations must remain stateless wrappers around their backend;
// all interpretation of values happens in the callers.
type Store interface {
	// Get returns the value at key. The second result is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
