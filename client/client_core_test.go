package client

import (
	"errors"
	"testing"
)

func TestNew_EmptyAPIKey(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyAPIKey) {
		t.Fatalf("expected ErrEmptyAPIKey, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	if c.Host() != "api.shopstyle.com" {
		t.Fatalf("host = %s", c.Host())
	}
	if c.Locale() != US {
		t.Fatalf("locale = %s", c.Locale())
	}
	if c.APIVersion() != 2 {
		t.Fatalf("version = %d", c.APIVersion())
	}
	if !c.CacheEnabled() {
		t.Fatal("cache should be enabled by default")
	}
	if _, ok := c.http.Transport.(*cacheTransport); !ok {
		t.Fatalf("expected cacheTransport, got %T", c.http.Transport)
	}
}

func TestNew_OptionErrorPropagates(t *testing.T) {
	if _, err := New("abc", WithAPIVersion(0)); err == nil {
		t.Fatal("expected error for version 0")
	}
}

func TestCloseIdempotent(t *testing.T) {
	s := &countingStore{}
	c := &Client{store: s, ownsStore: true}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if s.closes != 1 {
		t.Fatalf("store close called %d times", s.closes)
	}
}

func TestBuildURI_Spec(t *testing.T) {
	c, err := New("abc", WithLocale(US), WithAPIVersion(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	got := c.BuildURI("products", Params{"cat": "shoes"})
	if got != "http://api.shopstyle.com/api/v2/products?pid=abc&cat=shoes" {
		t.Fatalf("BuildURI = %q", got)
	}
}

func TestBuildURI_LocaleAndVersion(t *testing.T) {
	c, err := New("abc", WithLocale(JP), WithAPIVersion(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	if got := c.BuildURI("colors", nil); got != "http://api.shopstyle.co.jp/api/v3/colors?pid=abc" {
		t.Fatalf("BuildURI = %q", got)
	}
}

func TestResourceLabel(t *testing.T) {
	cases := map[string]string{
		"brands":             "brands",
		"products":           "products",
		"products/histogram": "products/histogram",
		"products/123":       "products/{id}",
		"/lists/":            "lists",
	}
	for in, want := range cases {
		if got := resourceLabel(in); got != want {
			t.Fatalf("resourceLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
