// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// candidate is a heap entry: the canonical edge at index idx reaching `to`.
type candidate struct {
	idx int
	to  int
	w   float64
}

// Prim computes the Minimum Spanning Tree (MST) of a weighted graph by growing
// outwards from root, treating each edge as undirected.
//
// Error Conditions:
//   - ErrInvalidGraph   : if graph is nil or graph.Weighted() == false.
//   - ErrDisconnected   : if |V| == 0 or the tree cannot reach every vertex.
//   - ErrRootOutOfRange : if root is not in [0, |V|).
//
// Steps:
//  1. Validate graph and root; |V|==1 → empty tree.
//  2. Build an undirected incidence list over canonical edge indices.
//  3. Mark root, push its incident edges.
//  4. Pop the lightest candidate (ties: lower canonical index); skip visited
//     targets, otherwise take the edge and push the new vertex's edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d", ErrRootOutOfRange, root)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Incidence.
	edges := graph.Edges()
	incident := make([][]int, n)
	for i, e := range edges {
		incident[e.From] = append(incident[e.From], i)
		if e.To != e.From {
			incident[e.To] = append(incident[e.To], i)
		}
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
		pq          = &candidatePQ{}
	)
	heap.Init(pq)
	push := func(u int) {
		visited[u] = true
		for _, i := range incident[u] {
			e := edges[i]
			other := e.To
			if other == u {
				other = e.From
			}
			if !visited[other] {
				heap.Push(pq, candidate{idx: i, to: other, w: e.Weight})
			}
		}
	}

	// 3. Seed.
	push(root)

	// 4. Grow.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, edges[c.idx])
		totalWeight += c.w
		push(c.to)
	}

	// 5. Coverage.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidatePQ implements heap.Interface for a min‐heap of candidates, ordered
// by weight then canonical index.
type candidatePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by weight, breaking ties on canonical edge index.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].w != pq[j].w {
		return pq[i].w < pq[j].w
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps elements at indices i and j.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate; called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
