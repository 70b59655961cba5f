package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ani18605/GRAPH-ANALYZER/analyzer"
	"github.com/ani18605/GRAPH-ANALYZER/bellman_ford"
	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/internal/service"
	"github.com/ani18605/GRAPH-ANALYZER/specio"
)

type analyzeFlags struct {
	format   string
	output   string
	parallel bool
	noCache  bool
	mst      string
	negSrc   string
}

func (c *CLI) analyzeCommand() *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a graph spec and print the report",
		Long: `Analyze reads a graph spec (JSON or YAML) from a file or stdin and prints
the report: adjacency, all-pairs distances, cycle flags, topological order,
minimum spanning tree, bridges and articulation points.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return c.runAnalyze(cmd, path, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", "", "input format: json|yaml (default from extension, json for stdin)")
	fl.StringVarP(&f.output, "output", "o", "json", "output format: json|yaml")
	fl.BoolVar(&f.parallel, "parallel", false, "run independent analyses concurrently")
	fl.BoolVar(&f.noCache, "no-cache", false, "bypass the report cache")
	fl.StringVar(&f.mst, "mst", "", "spanning tree method: kruskal|prim")
	fl.StringVar(&f.negSrc, "negative-cycle-source", "", `negative-cycle search source: "all" or a node id`)

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, path string, f analyzeFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	// 1. Formats.
	out, err := specio.ParseFormat(f.output)
	if err != nil {
		return err
	}
	var in specio.Format
	if f.format != "" {
		if in, err = specio.ParseFormat(f.format); err != nil {
			return err
		}
	}

	// 2. Spec.
	spec, err := c.readSpec(path, in)
	if err != nil {
		return err
	}

	// 3. Engine and service, flags over config.
	eng, err := c.newEngine(cmd, f)
	if err != nil {
		return err
	}
	store, err := c.openCache(f.noCache)
	if err != nil {
		return err
	}
	svc := service.New(eng, store,
		service.WithLogger(logger),
		service.WithTTL(c.cfg.Cache.TTL.Duration),
		service.WithLimits(service.Limits{MaxNodes: c.cfg.Limits.MaxNodes, MaxEdges: c.cfg.Limits.MaxEdges}),
	)
	defer svc.Close()

	// 4. Run.
	res, err := svc.Analyze(ctx, spec)
	if err != nil {
		if service.Is(err, service.ErrCodeInvalidInput) {
			return fmt.Errorf("invalid input: %s", service.UserMessage(err))
		}
		return err
	}
	prog.done("analysis complete", "nodes", spec.NodeCount, "cached", res.Cached)

	return specio.WriteReport(c.out, res.Report, out)
}

func (c *CLI) readSpec(path string, f specio.Format) (core.Spec, error) {
	if path != "-" {
		return specio.ImportSpec(path, f)
	}
	if f == "" {
		f = specio.FormatJSON
	}

	return specio.ReadSpec(c.in, f)
}

// newEngine resolves engine options: config first, then explicitly set flags.
func (c *CLI) newEngine(cmd *cobra.Command, f analyzeFlags) (*analyzer.Engine, error) {
	ec := c.cfg.Engine
	if cmd.Flags().Changed("parallel") {
		ec.Parallel = f.parallel
	}
	if f.mst != "" {
		ec.MSTMethod = strings.ToLower(f.mst)
	}
	if f.negSrc != "" {
		src, err := parseSource(f.negSrc)
		if err != nil {
			return nil, err
		}
		ec.NegativeCycleSource = src
	}

	return analyzer.NewEngine(
		analyzer.WithParallel(ec.Parallel),
		analyzer.WithMSTMethod(ec.MSTMethod),
		analyzer.WithNegativeCycleSource(ec.NegativeCycleSource),
		analyzer.WithLogger(loggerFromContext(cmd.Context())),
	), nil
}

func parseSource(s string) (int, error) {
	if strings.EqualFold(s, "all") {
		return bellman_ford.AllSources, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("--negative-cycle-source: want \"all\" or a node id, got %q", s)
	}

	return n, nil
}

