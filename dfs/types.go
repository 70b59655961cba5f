package dfs

import (
	"errors"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// Vertex visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack.
	Black        // Black: the vertex and all its descendants are finished.
)

// noParent marks a DFS root.
const noParent = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrDirected is returned by Connectivity on a directed graph; bridges and
	// articulation points are only defined for undirected graphs here.
	ErrDirected = errors.New("dfs: connectivity requires an undirected graph")
)

// ConnectivityResult holds the outcome of Connectivity.
type ConnectivityResult struct {
	// Bridges are canonical edges in the order the DFS closed them.
	Bridges []core.Edge

	// ArticulationPoints are vertex ids in ascending order.
	ArticulationPoints []int
}
