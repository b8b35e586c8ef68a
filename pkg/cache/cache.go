// Package cache stores rendered artifacts so repeated renders of the same
// keymap are served without interpreting or drawing again.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: never stores anything
//
// # Keys
//
// A [Keyer] derives keys from content hashes, so any change to the keymap
// table, geometry, scale, style or format produces a different key:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(tableHash, cache.ArtifactKeyOpts{Geometry: "iso", Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. A ttl of zero means the
// entry never expires. Get reports a miss as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
