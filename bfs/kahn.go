package bfs

import (
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// sorter encapsulates mutable state of one Kahn run.
type sorter struct {
	graph    *core.Graph
	opts     Options
	inDegree []int
	queue    []int
	head     int
	order    []int
}

// TopologicalSort returns the vertices of a directed graph in Kahn order:
// zero in-degree vertices are seeded in ascending id order and processed
// FIFO, each neighbor's in-degree is decremented in adjacency order, and
// a neighbor is enqueued the moment it reaches zero.
//
// Returns ErrGraphNil, ErrNotDirected for undirected graphs, ErrCycleDetected
// when fewer than n vertices could be ordered, the context error on
// cancellation, or any OnVisit error.
//
// Complexity: O(V+E) time, O(V) memory.
func TopologicalSort(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	s := &sorter{
		graph:    g,
		opts:     o,
		inDegree: make([]int, n),
		queue:    make([]int, 0, n),
		order:    make([]int, 0, n),
	}
	s.seed()
	if err := s.loop(); err != nil {
		return nil, err
	}
	if len(s.order) < n {
		return nil, ErrCycleDetected
	}

	return s.order, nil
}

// seed counts in-degrees and enqueues the initial sources.
func (s *sorter) seed() {
	n := s.graph.NodeCount()
	for u := 0; u < n; u++ {
		for _, v := range s.graph.Neighbors(u) {
			s.inDegree[v]++
		}
	}
	for u := 0; u < n; u++ {
		if s.inDegree[u] == 0 {
			s.queue = append(s.queue, u)
		}
	}
}

// loop drains the queue; head advances instead of reslicing so the backing
// array is reused for every vertex.
func (s *sorter) loop() error {
	for s.head < len(s.queue) {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		u := s.queue[s.head]
		s.head++
		if err := s.opts.OnVisit(u, len(s.order)); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		s.order = append(s.order, u)

		for _, v := range s.graph.Neighbors(u) {
			s.inDegree[v]--
			if s.inDegree[v] == 0 {
				s.queue = append(s.queue, v)
			}
		}
	}

	return nil
}
