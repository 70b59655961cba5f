// Package bellman_ford implements Bellman-Ford relaxation and negative-cycle
// detection on a core.Graph.
//
// Source policy:
//
//	– AllSources (default): every vertex starts at distance 0, as if a virtual
//	  source had a zero-weight arc to each of them. Any negative cycle in the
//	  graph is detected, even one no single vertex can reach.
//	– WithSource(s): classic single-source run. Cycles unreachable from s are
//	  not reported.
//
// HasNegativeCycle is gated on weighted + directed input and returns false
// for anything else. Run works on every graph: undirected edges relax in both
// directions and unweighted edges weigh 1.
//
// Complexity: O(V·E) time, O(V+E) memory. Rounds stop early once a pass
// relaxes nothing.
package bellman_ford
