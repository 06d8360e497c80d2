package cacher

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEntryNotFound   = errors.New("cache entry not found")
	ErrUnexpectedReply = errors.New("unexpected reply from cache")
)

// Engine is a key/value cache with a per-entry TTL. It is an optimization
// layer, never authoritative: callers must tolerate stale and missing
// entries. Implementations must be safe for concurrent use.
type Engine interface {
	// Get returns the cached value or ErrEntryNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Remove evicts key; evicting an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
