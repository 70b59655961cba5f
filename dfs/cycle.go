package dfs

import "github.com/ani18605/GRAPH-ANALYZER/core"

// cycleFrame is one entry of the explicit DFS stack.
type cycleFrame struct {
	node    int
	parent  int
	next    int  // index of the next neighbor to examine
	skipped bool // undirected: the edge back to parent was consumed
}

// HasCycle reports whether g contains a cycle. See DetectCycle.
func HasCycle(g *core.Graph) (bool, error) {
	cycle, err := DetectCycle(g)

	return cycle != nil, err
}

// DetectCycle returns the first cycle found as a closed walk
// [v0, v1, ..., v0], or nil when g is acyclic.
//
// Steps:
//  1. Start a walk from every White vertex in id order.
//  2. Directed: a Gray neighbor closes a cycle.
//     Undirected: any visited neighbor closes one, except the single edge
//     back to the DFS parent.
//  3. The witness is rebuilt from the parent links between the two ends.
//
// Complexity: O(V+E) time, O(V) memory.
func DetectCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		n        = g.NodeCount()
		directed = g.Directed()
		color    = make([]uint8, n)
		parent   = make([]int, n)
		stack    = make([]cycleFrame, 0, 64)
		root     int
	)

	for root = 0; root < n; root++ {
		if color[root] != White {
			continue
		}
		// 1. Seed this component.
		color[root] = Gray
		parent[root] = noParent
		stack = append(stack[:0], cycleFrame{node: root, parent: noParent})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			row := g.Neighbors(f.node)
			if f.next == len(row) {
				color[f.node] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			v := row[f.next]
			f.next++

			// 2. Classify the edge f.node → v.
			if !directed && v == f.parent && !f.skipped {
				f.skipped = true
				continue
			}
			switch color[v] {
			case White:
				color[v] = Gray
				parent[v] = f.node
				stack = append(stack, cycleFrame{node: v, parent: f.node})
			case Gray:
				return witness(parent, f.node, v), nil
			case Black:
				// Directed cross/forward edges are harmless. Undirected graphs
				// never reach a Black neighbor first: that edge was already
				// seen as a back edge from the other side.
				if !directed {
					return witness(parent, f.node, v), nil
				}
			}
		}
	}

	return nil, nil
}

// witness rebuilds v → ... → u → v from parent links, where v is an
// ancestor of u (or u itself for a self-loop).
func witness(parent []int, u, v int) []int {
	path := []int{u}
	for x := u; x != v && parent[x] != noParent; {
		x = parent[x]
		path = append(path, x)
	}
	// path is u..v; reverse into v..u then close the loop.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return append(path, v)
}
