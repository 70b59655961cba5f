// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It reads a weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// disjointSet is a union-find over ids 0..n-1 with path compression and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find walks to the root, halving the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}

	return true
}

// Kruskal computes the Minimum Spanning Tree (MST) of a weighted graph,
// treating each edge as undirected.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or fewer than |V|-1 edges could be joined.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted().
//  2. |V|==0 → ErrDisconnected; |V|==1 → empty tree, weight 0.
//  3. Copy canonical edges and stable-sort by ascending weight
//     (equal weights keep canonical order).
//  4. Union-find: take each edge whose endpoints are in different sets.
//     Self-loops never qualify.
//  5. Stop at |V|-1 edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Trivial sizes.
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Sorted copy.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Greedy selection.
	var (
		ds          = newDisjointSet(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 5. Complete.
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
