// Package core provides the immutable, integer-indexed Graph that every
// analysis in this module reads from, together with the input contract
// (Spec, RawEdge), its validation, and edge normalization.
//
// A Graph G = (V,E) is described by a node count n (vertices are the ids
// 0..n-1), two flags and a raw edge list:
//
//   - Directed vs. undirected (Spec.Directed)
//   - Weighted vs. unweighted (Spec.Weighted); unweighted edges weigh 1
//   - Parallel edges are collapsed into one canonical edge per pair
//   - Self-loops are kept (they count as cycles downstream)
//
// Pipeline:
//
//	Spec ──Validate──► Normalize ──► []Edge ──New──► *Graph ──► analyses
//
// Normalization rules (Normalize):
//
//	– key = (from,to) when directed, (min,max) when undirected.
//	– first occurrence fixes the edge's position in the output.
//	– weighted graphs keep the strictly lighter duplicate (ties keep the first).
//	– unweighted graphs always keep the first occurrence.
//
// Core Methods:
//
//	// Construction
//	New(spec Spec) (*Graph, error)          // O(n + E)
//	Validate(spec Spec) error               // O(E)
//	Normalize(spec Spec) ([]Edge, error)    // O(E)
//
//	// Query
//	NodeCount() int                         // O(1)
//	Directed() bool, Weighted() bool        // O(1)
//	Edges() []Edge                          // O(E) copy in canonical order
//	Neighbors(u int) []int                  // O(1) shared read-only view
//	AdjacencyList() AdjacencyList           // O(n + E) deep copy
//	Edge(u, v int) (Edge, bool)             // O(1)
//
// Errors:
//
//	ErrNegativeNodeCount - nodeCount < 0.
//	ErrTooManyNodes      - nodeCount above MaxNodeCount.
//	ErrOutOfRange        - an endpoint outside [0, nodeCount).
//	ErrMissingWeight     - weighted graph with an edge lacking a weight.
//	ErrNonFiniteWeight   - NaN or ±Inf weight on a weighted graph.
//	ErrWeightTooLarge    - |weight| above MaxAbsWeight.
//
// Every validation failure is returned as *ValidationError wrapping one of
// the sentinels above, so both errors.Is and errors.As work.
//
// Concurrency: a *Graph is never mutated after New returns; any number of
// goroutines may read it at once.
package core
