// Package cache provides the artifact cache for rendered outputs.
//
// Rendered SVG and PNG artifacts are keyed by a content hash of their DOT
// source plus render options, so re-rendering an unchanged instance is a
// cache hit. [FileCache] stores entries under the XDG cache home in
// sha256-sharded directories with optional TTL expiry; [NullCache]
// disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for rendered artifacts.
// Implementations must treat unknown keys as misses, never errors.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
