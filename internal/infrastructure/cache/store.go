package cache

import (
	"context"
	"time"
)

// Store is the key/value backend behind the upload registry and the meetings catalogue
type Store interface {
	// Set stores value under key. A zero expiration keeps the key until deleted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get returns the value and whether the key exists and has not expired
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Keys returns all live keys starting with prefix, sorted
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases background resources
	Close() error
}
