package bellman_ford

import (
	"fmt"
	"math"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// arc is one relaxable direction of a canonical edge.
type arc struct {
	from, to int
	w        float64
}

// Run executes Bellman-Ford on g.
//
// Steps:
//  1. Expand canonical edges into arcs (both directions when undirected).
//  2. Seed distances per Options.Source.
//  3. Up to n-1 rounds relaxing every arc; stop early on a quiet round.
//  4. One detection round: any further improvement means a negative cycle.
//
// Complexity: O(V·E) time, O(V+E) memory.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()
	if o.Source != AllSources && (o.Source < 0 || o.Source >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, o.Source, n)
	}

	// 1. Arcs.
	arcs := make([]arc, 0, g.EdgeCount()*2)
	for _, e := range g.Edges() {
		arcs = append(arcs, arc{e.From, e.To, e.Weight})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, arc{e.To, e.From, e.Weight})
		}
	}

	// 2. Seed.
	res := &Result{Dist: make([]float64, n), Prev: make([]int, n)}
	for i := range res.Dist {
		res.Prev[i] = -1
		if o.Source == AllSources {
			res.Dist[i] = 0
		} else {
			res.Dist[i] = math.Inf(1)
		}
	}
	if o.Source != AllSources {
		res.Dist[o.Source] = 0
	}

	// 3. Relax.
	for round := 1; round < n; round++ {
		res.Rounds = round
		if !relaxAll(arcs, res) {
			break
		}
	}

	// 4. Detect.
	res.NegativeCycle = relaxAll(arcs, res)

	return res, nil
}

// relaxAll performs one pass over arcs and reports whether anything improved.
func relaxAll(arcs []arc, res *Result) bool {
	changed := false
	for _, a := range arcs {
		du := res.Dist[a.from]
		if math.IsInf(du, 1) {
			continue
		}
		if du+a.w < res.Dist[a.to] {
			res.Dist[a.to] = du + a.w
			res.Prev[a.to] = a.from
			changed = true
		}
	}

	return changed
}

// HasNegativeCycle reports whether a weighted directed graph has a cycle of
// negative total weight. Unweighted or undirected graphs always yield false:
// the check is only meaningful for weighted directed input.
//
// Complexity: O(V·E).
func HasNegativeCycle(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Weighted() || !g.Directed() {
		return false, nil
	}
	res, err := Run(g, opts...)
	if err != nil {
		return false, err
	}

	return res.NegativeCycle, nil
}
