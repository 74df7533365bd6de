package client

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shopstyle/shopstyle-go/client/internal/cache"
)

// CacheOptions configures response caching.
type CacheOptions struct {
	// TTL is how long a successful response is served from cache.
	TTL time.Duration
	// CleanupInterval is how often the in-memory store purges expired entries.
	// Ignored when Store is set.
	CleanupInterval time.Duration
	// Store overrides the default in-memory store. The client does not close a
	// caller-supplied store.
	Store CacheStore
}

const (
	defaultCacheTTL             = 12 * time.Hour
	defaultCacheCleanupInterval = 10 * time.Minute
)

// DefaultCacheOptions returns the options New uses when caching is not
// configured: in memory, 12 hour TTL. Each call returns a fresh value.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		TTL:             defaultCacheTTL,
		CleanupInterval: defaultCacheCleanupInterval,
	}
}

// withDefaults fills zero fields from DefaultCacheOptions.
func (o CacheOptions) withDefaults() CacheOptions {
	d := DefaultCacheOptions()
	if o.TTL <= 0 {
		o.TTL = d.TTL
	}
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = d.CleanupInterval
	}
	return o
}

// NewMemoryStore returns an in-process CacheStore.
func NewMemoryStore(ttl, cleanupInterval time.Duration) CacheStore {
	return cache.NewMemoryStore(ttl, cleanupInterval)
}

// NewRedisStore connects to a Redis server and returns a CacheStore that can
// be shared between processes.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (CacheStore, error) {
	s, err := cache.DialRedis(ctx, addr, password, db, ttl)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// cacheTransport serves repeated GETs from a Store while the entry is fresh.
// Only 2xx responses are stored. Store failures are logged and bypassed.
type cacheTransport struct {
	next  http.RoundTripper
	store cache.Store
	ttl   time.Duration
}

func (t *cacheTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}
	ctx := req.Context()
	key := req.URL.String()

	b, ok, err := t.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("url", key).Msg("cache lookup failed")
	}
	if ok {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(b)), req)
		if err == nil {
			cacheLookupsTotal.WithLabelValues("hit").Inc()
			log.Debug().Str("url", key).Msg("cache hit")
			return resp, nil
		}
		log.Warn().Err(err).Str("url", key).Msg("discarding unreadable cache entry")
	}
	cacheLookupsTotal.WithLabelValues("miss").Inc()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	if err := t.store.Set(ctx, key, dump, t.ttl); err != nil {
		log.Warn().Err(err).Str("url", key).Msg("cache store failed")
	}
	return resp, nil
}
