package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	bf "github.com/ani18605/GRAPH-ANALYZER/bellman_ford"
	"github.com/ani18605/GRAPH-ANALYZER/bfs"
	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/dfs"
	"github.com/ani18605/GRAPH-ANALYZER/matrix"
	"github.com/ani18605/GRAPH-ANALYZER/prim_kruskal"
)

// ErrInvalidOptions is returned by Analyze when the engine was configured
// with an unknown MST method or a negative-cycle source the graph lacks.
var ErrInvalidOptions = errors.New("analyzer: invalid engine options")

// Engine runs analyses with a fixed configuration. It holds no per-call
// state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine builds an Engine from DefaultOptions plus opts.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{opts: o}
}

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Analyze runs the default sequential engine on spec.
func Analyze(spec core.Spec) (*Report, error) {
	return NewEngine().Analyze(context.Background(), spec)
}

// Analyze validates spec, builds the graph and runs every analysis.
//
// Steps:
//  1. Check options and context.
//  2. core.New: validation failures return *core.ValidationError, no report.
//  3. Adjacency matrix and list.
//  4. Six independent analyses, sequentially or on an errgroup.
//  5. Assemble the Report.
//
// ctx is checked between stages only; a running algorithm is not interrupted.
func (e *Engine) Analyze(ctx context.Context, spec core.Spec) (rep *Report, err error) {
	start := time.Now()
	logger := e.opts.Logger
	defer func() {
		e.opts.Hooks.OnAnalyzeComplete(ctx, time.Since(start), err)
	}()

	// 1. Preconditions.
	if !prim_kruskal.ValidMethod(e.opts.MSTMethod) {
		return nil, fmt.Errorf("%w: mst method %q", ErrInvalidOptions, e.opts.MSTMethod)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Build.
	var g *core.Graph
	if err = e.stage(ctx, StageBuild, func() error {
		g, err = core.New(spec)
		return err
	}); err != nil {
		return nil, err
	}
	e.opts.Hooks.OnAnalyzeStart(ctx, g.NodeCount(), g.EdgeCount())
	logger.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"directed", g.Directed(), "weighted", g.Weighted())

	// 3. Adjacency.
	r := &Report{}
	if err = e.stage(ctx, StageAdjacency, func() error {
		m, aerr := matrix.NewAdjacency(g)
		if aerr != nil {
			return aerr
		}
		r.adjacencyMatrix = m
		r.adjacencyList = g.AdjacencyList()
		return nil
	}); err != nil {
		return nil, err
	}

	// 4. Analyses; each writes only its own Report fields.
	tasks := []struct {
		name string
		run  func() error
	}{
		{StageDistances, func() error { return e.distances(g, r) }},
		{StageCycle, func() error { return e.cycle(g, r) }},
		{StageNegativeCycle, func() error { return e.negativeCycle(g, r) }},
		{StageTopological, func() error { return e.topological(ctx, g, r) }},
		{StageSpanningTree, func() error { return e.spanningTree(g, r) }},
		{StageConnectivity, func() error { return e.connectivity(g, r) }},
	}

	if e.opts.Parallel {
		eg, egCtx := errgroup.WithContext(ctx)
		for _, t := range tasks {
			t := t
			eg.Go(func() error { return e.stage(egCtx, t.name, t.run) })
		}
		if err = eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, t := range tasks {
			if err = e.stage(ctx, t.name, t.run); err != nil {
				return nil, err
			}
		}
	}

	// 5. Done.
	logger.Debug("analysis complete", "elapsed", time.Since(start).Round(time.Microsecond))

	return r, nil
}

// stage checks ctx, times fn and reports it.
func (e *Engine) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t0 := time.Now()
	err := fn()
	d := time.Since(t0)
	e.opts.Hooks.OnStageComplete(ctx, name, d, err)
	if err != nil {
		e.opts.Logger.Debug("stage failed", "stage", name, "err", err)
		return err
	}
	e.opts.Logger.Debug("stage done", "stage", name, "elapsed", d)

	return nil
}

func (e *Engine) distances(g *core.Graph, r *Report) error {
	ds, err := matrix.FloydWarshall(g)
	if err != nil {
		return err
	}
	r.distanceMatrix = ds

	return nil
}

func (e *Engine) cycle(g *core.Graph, r *Report) error {
	has, err := dfs.HasCycle(g)
	if err != nil {
		return err
	}
	r.hasCycle = has

	return nil
}

func (e *Engine) negativeCycle(g *core.Graph, r *Report) error {
	has, err := bf.HasNegativeCycle(g, bf.WithSource(e.opts.NegativeCycleSource))
	if errors.Is(err, bf.ErrSourceOutOfRange) {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err != nil {
		return err
	}
	r.hasNegativeCycle = has

	return nil
}

// topological leaves the order absent for undirected or cyclic graphs.
func (e *Engine) topological(ctx context.Context, g *core.Graph, r *Report) error {
	order, err := bfs.TopologicalSort(g, bfs.WithContext(ctx))
	switch {
	case errors.Is(err, bfs.ErrNotDirected), errors.Is(err, bfs.ErrCycleDetected):
		return nil
	case err != nil:
		return err
	}
	r.topologicalOrder = order

	return nil
}

// spanningTree leaves the tree absent for unweighted or disconnected graphs.
func (e *Engine) spanningTree(g *core.Graph, r *Report) error {
	if !g.Weighted() {
		return nil
	}
	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(e.opts.MSTMethod))
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		return nil
	}
	if err != nil {
		return err
	}
	r.spanningTree, r.spanningTreeWeight = edges, total

	return nil
}

// connectivity leaves bridges and articulation points absent when directed.
func (e *Engine) connectivity(g *core.Graph, r *Report) error {
	res, err := dfs.Connectivity(g)
	if errors.Is(err, dfs.ErrDirected) {
		return nil
	}
	if err != nil {
		return err
	}
	r.bridges, r.articulationPoints = res.Bridges, res.ArticulationPoints

	return nil
}
