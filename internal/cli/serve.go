package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoester/lightbox/internal/api"
	"github.com/mkoester/lightbox/pkg/cache"
	"github.com/mkoester/lightbox/pkg/pipeline"
)

// serveCommand creates the serve command for the sidecar HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		redisAddr  string
		noCache    bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout sidecar HTTP service",
		Long: `Run the layout sidecar HTTP service.

UI hosts post layout requests to /v1/layout and viewport windows to
/v1/window; health and Prometheus metrics are exposed on /healthz and
/metrics. With --redis, computed layouts are shared across instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			if redisAddr == "" {
				redisAddr = cfg.Serve.Redis
			}
			return c.runServe(cmd.Context(), addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+api.DefaultAddr+")")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/lightbox/config.toml)")

	return cmd
}

// runServe builds the cache backend and runs the server until the context
// is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, noCache bool) error {
	store, err := c.serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(api.Config{
		Addr:   addr,
		Runner: runner,
		Logger: c.Logger,
	})
	return srv.ListenAndServe(ctx)
}

// serveCache picks the cache backend: redis when configured, otherwise an
// in-process LRU.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	return cache.NewMemoryCache(0), nil
}
