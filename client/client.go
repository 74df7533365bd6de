package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shopstyle/shopstyle-go/client/internal/api"
	"github.com/shopstyle/shopstyle-go/client/internal/cache"
	sserrors "github.com/shopstyle/shopstyle-go/client/internal/errors"
)

// DefaultAPIVersion is the API version used when none is configured.
const DefaultAPIVersion = 2

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues GET requests against the ShopStyle API. It is safe for
// concurrent use; configuration is fixed at construction.
type Client struct {
	apiKey  string
	locale  Locale
	host    string
	version int

	http      *http.Client
	debug     bool
	cacheOpts *CacheOptions
	store     cache.Store // nil when caching is disabled
	ownsStore bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for apiKey. Without options it talks to the US host,
// API version 2, and caches responses in memory for 12 hours.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	defaultCache := DefaultCacheOptions()
	c := &Client{
		apiKey:    apiKey,
		locale:    DefaultLocale,
		version:   DefaultAPIVersion,
		http:      &http.Client{Timeout: 30 * time.Second},
		cacheOpts: &defaultCache,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if !c.locale.Valid() {
		log.Warn().Str("locale", string(c.locale)).Str("host", DefaultLocale.Host()).Msg("unknown locale, using default host")
	}
	c.host = c.locale.Host()

	c.buildTransport()
	return c, nil
}

// buildTransport assembles base ← debug ← cache on c.http.
func (c *Client) buildTransport() {
	rt := c.http.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if c.debug {
		rt = &debugTransport{base: rt}
	}
	if c.cacheOpts != nil {
		store := c.cacheOpts.Store
		if store == nil {
			store = cache.NewMemoryStore(c.cacheOpts.TTL, c.cacheOpts.CleanupInterval)
			c.ownsStore = true
		}
		c.store = store
		rt = &cacheTransport{next: rt, store: store, ttl: c.cacheOpts.TTL}
	}
	c.http.Transport = rt
}

// Close releases the cache store created by the client. A store passed in
// through CacheOptions is left open. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.store != nil && c.ownsStore {
		return c.store.Close()
	}
	return nil
}

// Host returns the API host selected from the locale.
func (c *Client) Host() string { return c.host }

// Locale returns the configured locale, as given.
func (c *Client) Locale() Locale { return c.locale }

// APIVersion returns the version used in request paths.
func (c *Client) APIVersion() int { return c.version }

// CacheEnabled reports whether responses are cached.
func (c *Client) CacheEnabled() bool { return c.store != nil }

// BuildURI returns the request URL for path and params:
// http://{host}/api/v{version}/{path}?pid={apiKey}&{params}. A "pid" entry in
// params replaces the API key.
func (c *Client) BuildURI(path string, params Params) string {
	return api.BuildURI(c.endpoint(), path, params)
}

// Call issues a GET for path and returns the decoded body. Transport errors
// are returned unchanged; non-2xx statuses yield *StatusError.
func (c *Client) Call(ctx context.Context, path string, params Params) (Response, error) {
	uri := c.BuildURI(path, params)
	resp, err := api.Call(ctx, c.http, uri)
	requestsTotal.WithLabelValues(resourceLabel(path), outcomeLabel(err)).Inc()
	return resp, err
}

func (c *Client) endpoint() api.Endpoint {
	return api.Endpoint{Host: c.host, Version: c.version, APIKey: c.apiKey}
}

// resourceLabel collapses item paths like products/123 so metrics stay bounded.
func resourceLabel(path string) string {
	path = strings.Trim(path, "/")
	if path == "products/histogram" {
		return path
	}
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i] + "/{id}"
	}
	return path
}

func outcomeLabel(err error) string {
	var se *sserrors.StatusError
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &se):
		return outcomeHTTPError
	default:
		return outcomeTransportError
	}
}

// --------------------------------------------------------------------
// Resource operations
// --------------------------------------------------------------------

// Brands lists brands.
func (c *Client) Brands(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "brands", params)
}

// Categories lists the category tree.
func (c *Client) Categories(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "categories", params)
}

// Colors lists the canonical colors.
func (c *Client) Colors(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "colors", params)
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (Response, error) {
	return c.Call(ctx, "products/"+url.PathEscape(id), nil)
}

// Products searches products.
func (c *Client) Products(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "products", params)
}

// ProductsHistogram returns facet counts for a product query.
func (c *Client) ProductsHistogram(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "products/histogram", params)
}

// Retailers lists retailers.
func (c *Client) Retailers(ctx context.Context) (Response, error) {
	return c.Call(ctx, "retailers", nil)
}

// Lists returns curated lists.
func (c *Client) Lists(ctx context.Context, params Params) (Response, error) {
	return c.Call(ctx, "lists", params)
}
