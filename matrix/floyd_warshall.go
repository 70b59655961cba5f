// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - All-pairs shortest paths with negative-cycle propagation.
//   - Works on a private flat float64 buffer; the tagged grid is built last.
//
// Contract:
//   - +Inf means "no path" during the run, -Inf means "via a negative cycle".
//   - The diagonal of the result is always Zero.

package matrix

import (
	"math"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes the tagged distance matrix of g.
//
// Steps:
//  1. Init: d[i][i] = 0 (or a lighter negative self-loop), +Inf elsewhere,
//     then each canonical edge (mirrored when undirected).
//  2. Relax with k → i → j, skipping +Inf legs.
//  3. Extra pass: any pair that still strictly decreases becomes -Inf.
//  4. Propagate: a pair that has a path (not +Inf) becomes -Inf when
//     d[i][k] or d[k][j] is -Inf for some k.
//  5. Tag: diagonal Zero, +Inf Unreachable, -Inf NegativeInfinity, else Finite.
//
// Complexity: O(n³) time, O(n²) memory.
func FloydWarshall(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opFloydWarshall, ErrGraphNil)
	}

	n := g.NodeCount()
	d := initDistances(g)
	relax(d, n)
	markDecreasing(d, n)
	propagateNegative(d, n)

	return tag(d, n), nil
}

// initDistances builds the starting flat buffer.
func initDistances(g *core.Graph) []float64 {
	var (
		n   = g.NodeCount()
		d   = make([]float64, n*n)
		inf = math.Inf(1)
		i   int
	)
	for i = range d {
		d[i] = inf
	}
	for i = 0; i < n; i++ {
		d[i*n+i] = 0
	}

	var put = func(u, v int, w float64) {
		if w < d[u*n+v] {
			d[u*n+v] = w
		}
	}
	for _, e := range g.Edges() {
		// A self-loop only matters when it is negative; put keeps the minimum.
		put(e.From, e.To, e.Weight)
		if !g.Directed() && e.From != e.To {
			put(e.To, e.From, e.Weight)
		}
	}

	return d
}

// relax is the classic closure; loop order is fixed for deterministic sums.
func relax(d []float64, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < d[baseI+j] {
					d[baseI+j] = cand
				}
			}
		}
	}
}

// markDecreasing runs one more relaxation round and pins every pair that
// still improves to -Inf. After a full closure only pairs touched by a
// negative cycle can improve.
func markDecreasing(d []float64, n int) {
	var (
		k, i, j int
		ik, kj  float64
		negInf  = math.Inf(-1)
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = d[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if ik+kj < d[i*n+j] {
					d[i*n+j] = negInf
				}
			}
		}
	}
}

// propagateNegative spreads -Inf in one k → i → j sweep: d[i][j] becomes
// -Inf when d[i][k] or d[k][j] is -Inf, unless d[i][j] is +Inf.
func propagateNegative(d []float64, n int) {
	var (
		k, i, j int
		negInf  = math.Inf(-1)
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if math.IsInf(d[i*n+j], 1) {
					continue
				}
				if math.IsInf(d[i*n+k], -1) || math.IsInf(d[k*n+j], -1) {
					d[i*n+j] = negInf
				}
			}
		}
	}
}

// tag converts the float buffer into the four-kind grid.
func tag(d []float64, n int) *Distances {
	ds := &Distances{n: n, cells: make([]Distance, n*n)}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = d[i*n+j]
			switch {
			case i == j:
				ds.cells[i*n+j] = Zero()
			case math.IsInf(v, 1):
				ds.cells[i*n+j] = Unreachable()
			case math.IsInf(v, -1):
				ds.cells[i*n+j] = NegativeInfinity()
			default:
				ds.cells[i*n+j] = Finite(v)
			}
		}
	}

	return ds
}
