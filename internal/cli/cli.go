// Package cli implements the graphalyze command-line interface.
//
// Commands:
//   - analyze:  read a spec and print its report
//   - generate: emit a spec fixture from the builder package
//   - serve:    run the HTTP API
//   - cache:    manage the report cache
//
// Settings come from config.Load (--config), then command flags. --verbose
// forces debug logging. The logger travels in the command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ani18605/GRAPH-ANALYZER/buildinfo"
	"github.com/ani18605/GRAPH-ANALYZER/cache"
	"github.com/ani18605/GRAPH-ANALYZER/config"
)

const appName = "graphalyze"

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI reading specs from in, writing results to out and logs to errw.
func New(in io.Reader, out, errw io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(errw, log.InfoLevel),
		in:     in,
		out:    out,
		cfg:    config.Default(),
	}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "graphalyze analyzes graphs: distances, cycles, orderings, spanning trees, cut points",
		Version:       buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// setup loads the configuration and attaches the logger to the context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.Logger.SetLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "cache", cfg.Cache.Backend)

	return nil
}

// openCache opens the configured backend, or a NullCache when disabled.
func (c *CLI) openCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	cc := c.cfg.Cache

	return cache.Open(cc.Backend, cc.Dir, cache.RedisOptions{
		Addr:     cc.Redis.Addr,
		Password: cc.Redis.Password,
		DB:       cc.Redis.DB,
		Prefix:   cc.Redis.Prefix,
	})
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, keyvals ...interface{}) {
	p.logger.Info(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
