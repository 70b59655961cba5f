package core

import "fmt"

// Graph is the immutable, integer-indexed graph every analysis reads.
//
// It owns the canonical edge list and the adjacency list derived from it.
// Nothing mutates a Graph after New returns; accessors that expose internal
// slices say so and callers must treat them as read-only.
type Graph struct {
	nodeCount int
	directed  bool
	weighted  bool

	edges []Edge          // canonical edges, first-seen order
	index map[edgeKey]int // canonical key → position in edges
	adj   AdjacencyList   // node → neighbors, insertion order
}

// New validates spec, normalizes its edges and builds the adjacency list.
//
// Steps:
//  1. Validate(spec); any violation is returned as *ValidationError.
//  2. Normalize(spec) into canonical edges.
//  3. Build the adjacency list: append To to From's row, and From to To's
//     row when undirected.
//
// Complexity: O(n + E) time and memory.
func New(spec Spec) (*Graph, error) {
	// 1. Validate before allocating anything sized by the input.
	if err := Validate(spec); err != nil {
		return nil, err
	}

	// 2. Canonical edges.
	edges, err := Normalize(spec)
	if err != nil {
		return nil, err
	}

	return FromEdges(spec.NodeCount, spec.Directed, spec.Weighted, edges)
}

// FromEdges builds a Graph from edges that are already canonical (for example
// the output of Normalize or a builder fixture). Endpoints are range-checked;
// duplicate keys are rejected because they would break the one-edge-per-pair
// invariant.
func FromEdges(nodeCount int, directed, weighted bool, edges []Edge) (*Graph, error) {
	if nodeCount < 0 {
		return nil, &ValidationError{Field: "nodeCount", Index: -1, Value: nodeCount, Err: ErrNegativeNodeCount}
	}

	g := &Graph{
		nodeCount: nodeCount,
		directed:  directed,
		weighted:  weighted,
		edges:     make([]Edge, len(edges)),
		index:     make(map[edgeKey]int, len(edges)),
		adj:       make(AdjacencyList, nodeCount),
	}
	copy(g.edges, edges)

	// 3. Adjacency rows in edge insertion order.
	for i, e := range g.edges {
		if e.From < 0 || e.From >= nodeCount {
			return nil, newEdgeError(i, "from", e.From, ErrOutOfRange)
		}
		if e.To < 0 || e.To >= nodeCount {
			return nil, newEdgeError(i, "to", e.To, ErrOutOfRange)
		}
		k := keyOf(e.From, e.To, directed)
		if _, dup := g.index[k]; dup {
			return nil, fmt.Errorf("core: FromEdges: duplicate edge %d-%d at %d", e.From, e.To, i)
		}
		g.index[k] = i

		g.adj[e.From] = append(g.adj[e.From], e.To)
		if !directed {
			g.adj[e.To] = append(g.adj[e.To], e.From)
		}
	}

	return g, nil
}

// NodeCount returns n; vertex ids are 0..n-1.
func (g *Graph) NodeCount() int { return g.nodeCount }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }

// EdgeCount returns the number of canonical edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the canonical edges in first-seen order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns u's adjacency row. The slice is shared with the Graph
// and must not be modified. Out-of-range ids yield nil.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.nodeCount {
		return nil
	}

	return g.adj[u]
}

// AdjacencyList returns a deep copy of the adjacency list. Every row is
// non-nil so the JSON form is [] rather than null for isolated nodes.
// Complexity: O(n + E).
func (g *Graph) AdjacencyList() AdjacencyList {
	out := make(AdjacencyList, g.nodeCount)
	for u, row := range g.adj {
		out[u] = make([]int, len(row))
		copy(out[u], row)
	}

	return out
}

// Edge looks up the canonical edge joining u and v (ordered when directed).
// Complexity: O(1).
func (g *Graph) Edge(u, v int) (Edge, bool) {
	i, ok := g.index[keyOf(u, v, g.directed)]
	if !ok {
		return Edge{}, false
	}

	return g.edges[i], true
}
