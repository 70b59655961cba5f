// Package prim_kruskal provides two algorithms for computing the Minimum
// Spanning Tree (MST) of a weighted *core.Graph: Kruskal's and Prim's.
//
// What & Why
//
//   - Given a connected weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects every vertex with minimum total weight.
//   - Both algorithms read edges as undirected. A weighted directed graph
//     therefore yields the spanning tree of its underlying undirected graph.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Stable-sort canonical edges by weight, then merge components with a
//     disjoint set (path compression + union by rank) until |V|−1 edges.
//     Ties keep canonical edge order. O(E log E + α(V)·E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root with a min-heap of candidate edges, ties broken
//     on canonical edge index. O(E log E).
//
//   - Compute(g, opts...) dispatches on MSTOptions.Method (Kruskal default).
//
// Error Conditions
//
//   - ErrInvalidGraph   graph is nil or unweighted.
//   - ErrDisconnected   |V| == 0, or no tree can cover every vertex.
//   - ErrRootOutOfRange Prim root not in [0, |V|).
//   - ErrUnknownMethod  Compute with an unknown method name.
//
// A single vertex yields an empty tree of weight 0. Self-loops never join two
// components and are therefore never selected.
package prim_kruskal
