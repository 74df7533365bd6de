package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shopstyle/shopstyle-go/client"
)

// Config holds CLI configuration.
// Environment variables are parsed with the SHOPSTYLE_ prefix,
// e.g. SHOPSTYLE_API_KEY, SHOPSTYLE_LOCALE.
type Config struct {
	APIKey     string `envconfig:"API_KEY" default:""`
	Locale     string `envconfig:"LOCALE" default:"US"`
	APIVersion int    `envconfig:"API_VERSION" default:"2"`

	// Cache Configuration
	CacheDisabled bool          `envconfig:"CACHE_DISABLED" default:"false"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"12h"`

	// Redis is used as the cache store when RedisAddr is set
	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// New creates a Config from the environment and validates it.
func New() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the environment without validating it, so callers can layer
// flag overrides on top before calling ResolveDefaults. The returned Config
// is never nil; on a parse error it holds Defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SHOPSTYLE", &cfg); err != nil {
		defaults := Defaults()
		return &defaults, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Defaults returns the configuration used when no environment is set.
func Defaults() Config {
	return Config{
		Locale:      string(client.DefaultLocale),
		APIVersion:  client.DefaultAPIVersion,
		CacheTTL:    client.DefaultCacheOptions().TTL,
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
	}
}

// ResolveDefaults normalises the locale and rejects values the client would
// otherwise silently replace.
func (c *Config) ResolveDefaults() error {
	l, err := client.ParseLocale(c.Locale)
	if err != nil {
		return err
	}
	c.Locale = string(l)

	if c.APIVersion <= 0 {
		return fmt.Errorf("unsupported API_VERSION: %d", c.APIVersion)
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = client.DefaultCacheOptions().TTL
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	return nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogSummary writes the effective configuration without secrets.
func (c *Config) LogSummary() {
	log.Debug().
		Str("locale", c.Locale).
		Int("api_version", c.APIVersion).
		Bool("api_key_present", c.APIKey != "").
		Bool("cache_disabled", c.CacheDisabled).
		Dur("cache_ttl", c.CacheTTL).
		Str("redis_addr", c.RedisAddr).
		Dur("http_timeout", c.HTTPTimeout).
		Msg("configuration loaded")
}
