package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shopstyle/shopstyle-go/client"
	"github.com/shopstyle/shopstyle-go/internal/config"
)

var (
	apiKey     string
	locale     string
	apiVersion int
	noCache    bool
	cacheTTL   time.Duration
	redisAddr  string
	timeout    time.Duration
	debug      bool

	cfg *config.Config

	// testTransport replaces the network in tests.
	testTransport http.RoundTripper
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	// Flags default to the raw environment; validation runs once the flags
	// have been applied, so a flag can replace a bad environment value.
	loaded, loadErr := config.Load()

	rootCmd := &cobra.Command{
		Use:           "shopstyle",
		Short:         "Query the ShopStyle product API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger(cmd.ErrOrStderr())
			if loadErr != nil {
				return loadErr
			}

			final := *loaded
			final.APIKey = apiKey
			final.Locale = locale
			final.APIVersion = apiVersion
			final.CacheDisabled = noCache
			final.CacheTTL = cacheTTL
			final.RedisAddr = redisAddr
			final.HTTPTimeout = timeout
			if err := final.ResolveDefaults(); err != nil {
				return err
			}
			locale = final.Locale
			cacheTTL = final.CacheTTL

			if debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(final.Level())
			}
			cfg = &final
			cfg.LogSummary()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", loaded.APIKey, "ShopStyle API key (pid); defaults to SHOPSTYLE_API_KEY")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", loaded.Locale, "Regional API: US, UK, DE, FR, JP, AU, CA")
	rootCmd.PersistentFlags().IntVar(&apiVersion, "api-version", loaded.APIVersion, "API version")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", loaded.CacheDisabled, "Disable response caching")
	rootCmd.PersistentFlags().DurationVar(&cacheTTL, "cache-ttl", loaded.CacheTTL, "How long responses are cached")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", loaded.RedisAddr, "Redis address for a shared response cache")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", loaded.HTTPTimeout, "HTTP timeout per request")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newParamsCmd("brands", "List brands", (*client.Client).Brands))
	rootCmd.AddCommand(newParamsCmd("categories", "List categories", (*client.Client).Categories))
	rootCmd.AddCommand(newParamsCmd("colors", "List colors", (*client.Client).Colors))
	rootCmd.AddCommand(newParamsCmd("products", "Search products", (*client.Client).Products))
	rootCmd.AddCommand(newParamsCmd("products-histogram", "Product facet histogram", (*client.Client).ProductsHistogram))
	rootCmd.AddCommand(newParamsCmd("lists", "List curated lists", (*client.Client).Lists))
	rootCmd.AddCommand(newProductCmd())
	rootCmd.AddCommand(newRetailersCmd())
	rootCmd.AddCommand(newURICmd())

	return rootCmd
}

type paramsCall func(*client.Client, context.Context, client.Params) (client.Response, error)

func newParamsCmd(use, short string, call paramsCall) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := toParams(params)
			if err != nil {
				return err
			}
			return run(cmd, use, func(ctx context.Context, c *client.Client) (client.Response, error) {
				return call(c, ctx, p)
			})
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter key=value (repeatable)")
	return cmd
}

func newProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Fetch a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "product", func(ctx context.Context, c *client.Client) (client.Response, error) {
				return c.Product(ctx, args[0])
			})
		},
	}
}

func newRetailersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retailers",
		Short: "List retailers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "retailers", func(ctx context.Context, c *client.Client) (client.Response, error) {
				return c.Retailers(ctx)
			})
		},
	}
}

func newURICmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "uri <path>",
		Short: "Print the request URL for a resource path without calling the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := toParams(params)
			if err != nil {
				return err
			}
			c, closeFn, err := newClient(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.BuildURI(args[0], p))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter key=value (repeatable)")
	return cmd
}

// run executes one API call and prints the indented JSON body.
func run(cmd *cobra.Command, resource string, call func(context.Context, *client.Client) (client.Response, error)) error {
	c, closeFn, err := newClient(cmd.Context(), noCache)
	if err != nil {
		return err
	}
	defer closeFn()

	start := time.Now()
	resp, err := call(cmd.Context(), c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().
			Err(err).
			Str("resource", resource).
			Int("status_code", client.StatusCode(err)).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return err
	}

	log.Debug().
		Str("resource", resource).
		Int("bytes", len(resp)).
		Dur("elapsed", elapsed).
		Msg("request completed")

	return printJSON(cmd.OutOrStdout(), resp)
}

// newClient builds a client from the resolved flags. The returned func
// releases the client and any Redis connection it opened.
func newClient(ctx context.Context, disableCache bool) (*client.Client, func(), error) {
	if apiKey == "" {
		return nil, nil, fmt.Errorf("api key required: set --api-key or SHOPSTYLE_API_KEY")
	}
	var store client.CacheStore

	opts := []client.Option{
		client.WithLocale(client.Locale(locale)),
		client.WithAPIVersion(apiVersion),
		client.WithHTTPTimeout(timeout),
		client.WithDebugLogging(debug),
	}
	if testTransport != nil {
		opts = append(opts, client.WithHTTPClient(&http.Client{Transport: testTransport}))
	}

	switch {
	case disableCache:
		opts = append(opts, client.WithoutCache())
	case redisAddr != "":
		password, db := "", 0
		if cfg != nil {
			password, db = cfg.RedisPassword, cfg.RedisDB
		}
		var err error
		store, err = client.NewRedisStore(ctx, redisAddr, password, db, cacheTTL)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, client.WithCache(client.CacheOptions{TTL: cacheTTL, Store: store}))
	default:
		opts = append(opts, client.WithCache(client.CacheOptions{TTL: cacheTTL}))
	}

	c, err := client.New(apiKey, opts...)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, nil, err
	}
	return c, func() {
		_ = c.Close()
		if store != nil {
			_ = store.Close()
		}
	}, nil
}

// toParams splits each key=value entry on the first '='. Values are kept
// verbatim, commas included.
func toParams(entries []string) (client.Params, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	p := make(client.Params, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", e)
		}
		p[k] = v
	}
	return p, nil
}

func printJSON(w io.Writer, raw client.Response) error {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
