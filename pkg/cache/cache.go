// Package cache stores rendered builds keyed by a hash of their inputs.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer]; [NewScopedKeyer] adds a prefix so several
// tenants can share one backend.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a build stays cached when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// BuildKeyOpts lists everything besides the source that changes the
// output of a build.
type BuildKeyOpts struct {
	Format   string   `json:"format"`
	Class    string   `json:"class,omitempty"`
	Packages []string `json:"packages,omitempty"`
	Outline  bool     `json:"outline,omitempty"`
	Version  string   `json:"version,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// BuildKey returns the key for a build of the source with the given
	// hash.
	BuildKey(sourceHash string, opts BuildKeyOpts) string
}

// DefaultKeyer produces keys of the form "build:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// BuildKey hashes the source hash together with opts.
func (DefaultKeyer) BuildKey(sourceHash string, opts BuildKeyOpts) string {
	return hashKey("build", sourceHash, opts)
}
