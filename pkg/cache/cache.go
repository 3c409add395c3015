// Package cache stores rendered artifacts so repeated renders of an unchanged
// scene are served without redrawing.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (preview server deployments)
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer], which hashes the scene content together with the
// render options that affect the output.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the data stored under key. ok is false on a miss.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept by default.
const TTLArtifact = 7 * 24 * time.Hour
