package dfs

import "github.com/ani18605/GRAPH-ANALYZER/core"

// Frame phases of the iterative low-link walk.
const (
	phaseInit         = iota // assign disc/low, mark visited
	phaseProcessEdges        // scan neighbors, descend into unvisited ones
	phasePostChild           // back from a child: fold its low, test bridge/AP
	phaseFinalize            // root AP rule, pop
)

// lowLinkFrame is one entry of the explicit stack.
type lowLinkFrame struct {
	node       int
	parent     int
	edgeIndex  int
	phase      int
	child      int
	childCount int
}

// lowLinkWalk owns every scratch array of one Connectivity call, including
// the discovery counter.
type lowLinkWalk struct {
	g       *core.Graph
	visited []bool
	disc    []int
	low     []int
	isAP    []bool
	timer   int
	bridges []core.Edge
	stack   []lowLinkFrame
}

// Connectivity finds bridges and articulation points of an undirected graph.
//
// Steps:
//  1. Reject directed graphs with ErrDirected.
//  2. Run one low-link DFS from each unvisited vertex in id order.
//  3. Collect articulation points in ascending id order.
//
// Bridges are reported as the graph's canonical edges, so an edge given as
// (1,0) is reported as (1,0), never flipped.
//
// Complexity: O(V+E) time, O(V) memory.
func Connectivity(g *core.Graph) (*ConnectivityResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// 1. Undirected only.
	if g.Directed() {
		return nil, ErrDirected
	}

	n := g.NodeCount()
	w := &lowLinkWalk{
		g:       g,
		visited: make([]bool, n),
		disc:    make([]int, n),
		low:     make([]int, n),
		isAP:    make([]bool, n),
		bridges: make([]core.Edge, 0),
		stack:   make([]lowLinkFrame, 0, 64),
	}

	// 2. One tree per component.
	for u := 0; u < n; u++ {
		if !w.visited[u] {
			w.run(u)
		}
	}

	// 3. Ascending by construction.
	aps := make([]int, 0)
	for u, ok := range w.isAP {
		if ok {
			aps = append(aps, u)
		}
	}

	return &ConnectivityResult{Bridges: w.bridges, ArticulationPoints: aps}, nil
}

// run walks the component containing root.
func (w *lowLinkWalk) run(root int) {
	w.stack = append(w.stack[:0], lowLinkFrame{node: root, parent: noParent, phase: phaseInit})

	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]

		switch f.phase {
		case phaseInit:
			w.visited[f.node] = true
			w.disc[f.node] = w.timer
			w.low[f.node] = w.timer
			w.timer++
			f.phase = phaseProcessEdges

		case phaseProcessEdges:
			row := w.g.Neighbors(f.node)
			descended := false
			for f.edgeIndex < len(row) {
				v := row[f.edgeIndex]
				f.edgeIndex++
				if v == f.parent {
					continue
				}
				if !w.visited[v] {
					// Set our own state before append may move the stack.
					f.phase = phasePostChild
					f.child = v
					f.childCount++
					w.stack = append(w.stack, lowLinkFrame{node: v, parent: f.node, phase: phaseInit})
					descended = true
					break
				}
				// Back edge.
				if w.disc[v] < w.low[f.node] {
					w.low[f.node] = w.disc[v]
				}
			}
			if !descended {
				f.phase = phaseFinalize
			}

		case phasePostChild:
			u, v := f.node, f.child
			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}
			if f.parent != noParent && w.low[v] >= w.disc[u] {
				w.isAP[u] = true
			}
			if w.low[v] > w.disc[u] {
				if e, ok := w.g.Edge(u, v); ok {
					w.bridges = append(w.bridges, e)
				}
			}
			f.phase = phaseProcessEdges

		case phaseFinalize:
			if f.parent == noParent && f.childCount > 1 {
				w.isAP[f.node] = true
			}
			w.stack = w.stack[:len(w.stack)-1]
		}
	}
}
