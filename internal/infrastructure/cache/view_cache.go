package cache

import (
	"context"
	"time"
)

// Default TTLs for cached API views
const (
	ListTTL   = 5 * time.Minute
	DetailTTL = 10 * time.Minute
)

// ViewCache caches serialized API read views. Implementations must treat a
// miss as (false, nil), not an error.
type ViewCache interface {
	// Get unmarshals the cached value for key into dest and reports whether
	// the key was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for the given TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the given keys
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPrefix removes every key starting with prefix
	DeleteByPrefix(ctx context.Context, prefix string) error
}
