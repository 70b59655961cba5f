// SPDX-License-Identifier: MIT

package matrix

import "github.com/ani18605/GRAPH-ANALYZER/core"

const opNewAdjacency = "NewAdjacency"

// NewAdjacency builds the n×n adjacency matrix of g.
//
// Steps:
//  1. Allocate an n×n zero matrix (0 = no edge).
//  2. For each canonical edge write its weight at [from][to].
//  3. On undirected graphs mirror it at [to][from].
//
// Unweighted edges carry weight 1 already, so no special casing is needed.
// The result is symmetric iff g is undirected.
// Complexity: O(n² + E).
func NewAdjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opNewAdjacency, ErrGraphNil)
	}

	// 1. Allocate.
	n := g.NodeCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewAdjacency, err)
	}

	// 2-3. Fill; indices come from a validated graph so direct writes are safe.
	for _, e := range g.Edges() {
		m.data[e.From*n+e.To] = e.Weight
		if !g.Directed() {
			m.data[e.To*n+e.From] = e.Weight
		}
	}

	return m, nil
}
