// Package cache holds the response stores backing the client's caching
// transport. Values are opaque byte slices; stores only manage expiry.
package cache

import (
	"context"
	"time"
)

// Store persists serialized responses for a bounded time.
//
// A miss is reported as (nil, false, nil). Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}
