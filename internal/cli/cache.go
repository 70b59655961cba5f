package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ani18605/GRAPH-ANALYZER/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the report cache",
	}
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached report from the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.openCache(false)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("cache cleared", "backend", c.cfg.Cache.Backend)

			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.Cache.Backend != cache.BackendFile {
				return fmt.Errorf("cache backend is %q, not %q", c.cfg.Cache.Backend, cache.BackendFile)
			}
			_, err := fmt.Fprintln(c.out, c.cfg.Cache.Dir)

			return err
		},
	}
}
