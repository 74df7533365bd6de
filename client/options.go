package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// The transport chain (debug logging, cache) is assembled after all options
// are applied, so it always wraps whatever client WithHTTPClient installed.
type Option func(*Client) error

// WithLocale selects the regional API host. Unrecognised locales fall back to
// the US host; use ParseLocale first to reject them instead.
func WithLocale(l Locale) Option {
	return func(c *Client) error {
		c.locale = l
		return nil
	}
}

// WithAPIVersion sets the version segment of the request path (/api/v{n}/).
func WithAPIVersion(v int) Option {
	return func(c *Client) error {
		if v <= 0 {
			return fmt.Errorf("api version must be > 0")
		}
		c.version = v
		return nil
	}
}

// WithCache enables response caching with opts. Zero fields take their value
// from DefaultCacheOptions.
func WithCache(opts CacheOptions) Option {
	return func(c *Client) error {
		o := opts.withDefaults()
		c.cacheOpts = &o
		return nil
	}
}

// WithoutCache sends every call to the network.
func WithoutCache() Option {
	return func(c *Client) error {
		c.cacheOpts = nil
		return nil
	}
}

// WithHTTPClient uses hc as the underlying transport. hc is copied; its
// Transport is wrapped, not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		cp.Timeout = c.http.Timeout
		if hc.Timeout > 0 {
			cp.Timeout = hc.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging logs each network request/response at debug level when
// enabled is true. Do not enable this in production: dumps include the API key.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}
