// Package matrix provides the dense matrix views of a core.Graph: the
// adjacency matrix and the all-pairs distance matrix.
//
// Adjacency:
//
//	NewAdjacency(g) writes weight (1 when unweighted) at [from][to] for every
//	canonical edge, mirrored at [to][from] on undirected graphs. 0 means
//	"no edge", which is ambiguous with a genuine zero-weight edge; callers that
//	care must consult the edge list.
//
// Distances:
//
//	FloydWarshall(g) returns an n×n grid of tagged Distance cells with exactly
//	four kinds: Zero (diagonal), Finite(d), Unreachable and NegativeInfinity
//	(the pair can be routed through a negative cycle).
//
//	Phase 1  classic relaxation, k outermost, +Inf operands skipped.
//	Phase 2  one more pass; any pair that still strictly decreases is -Inf.
//	Phase 3  every pair i→k→j with k on a negative cycle (or an -Inf leg)
//	         and both legs reachable becomes -Inf.
//
// JSON / YAML boundary:
//
//	Zero → 0, Finite(d) → d, Unreachable → -1, NegativeInfinity → "-Infinity".
//
// Complexity: NewAdjacency O(n² + E); FloydWarshall O(n³) time, O(n²) memory.
package matrix
