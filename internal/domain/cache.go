package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the port for caching rendered catalog responses.
// Implementations of this interface are adapters (e.g., RedisCacheAdapter).
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one exists.
	// If expiration is 0, the item does not expire.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes items from the cache. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
