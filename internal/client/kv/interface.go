// Package kv provides the durable local key-value storage capability backing
// the offline write buffer and the alert-dismissal store. Values are plain
// strings; callers layer JSON on top as needed.
package kv

import "context"

// Store is the injected storage capability. Implementations must be safe for
// concurrent use within a single process; cross-process coordination is not
// provided.
type Store interface {
	// Get returns the value for key, or common.ErrorNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
