package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/ani18605/GRAPH-ANALYZER/analyzer"
	"github.com/ani18605/GRAPH-ANALYZER/cache"
	"github.com/ani18605/GRAPH-ANALYZER/internal/server"
	"github.com/ani18605/GRAPH-ANALYZER/internal/service"
	"github.com/ani18605/GRAPH-ANALYZER/metrics"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes POST /v1/analyze, GET /healthz and GET /metrics.
It stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			return c.runServe(cmd)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] addr)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := c.cfg

	// 1. Metrics on a private registry plus runtime collectors.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 2. Engine, cache, service.
	eng := analyzer.NewEngine(
		analyzer.WithParallel(cfg.Engine.Parallel),
		analyzer.WithMSTMethod(cfg.Engine.MSTMethod),
		analyzer.WithNegativeCycleSource(cfg.Engine.NegativeCycleSource),
		analyzer.WithLogger(logger),
		analyzer.WithHooks(m),
	)
	store, err := c.openCache(false)
	if err != nil {
		return err
	}
	if rc, ok := store.(*cache.RedisCache); ok {
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, requests will miss the cache", "addr", cfg.Cache.Redis.Addr, "err", err)
		}
	}
	svc := service.New(eng, cache.Instrumented(store, m),
		service.WithLogger(logger),
		service.WithTTL(cfg.Cache.TTL.Duration),
		service.WithLimits(service.Limits{MaxNodes: cfg.Limits.MaxNodes, MaxEdges: cfg.Limits.MaxEdges}),
	)
	defer svc.Close()

	// 3. HTTP.
	router := server.NewRouter(server.Config{
		Service:      svc,
		Logger:       logger,
		Metrics:      m,
		Gatherer:     reg,
		MaxBodyBytes: cfg.Limits.MaxBodyBytes,
	})
	srv := server.NewHTTPServer(cfg.Server.Addr, router, cfg.Server.ReadTimeout.Duration, cfg.Server.WriteTimeout.Duration)
	logger.Info("listening", "addr", cfg.Server.Addr, "cache", cfg.Cache.Backend)

	if err := server.Run(ctx, srv); err != nil {
		return err
	}
	logger.Info("server stopped")

	return ctx.Err()
}
