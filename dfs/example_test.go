package dfs_test

import (
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/dfs"
)

// ExampleConnectivity shows bridges and cut vertices of a triangle with a tail.
func ExampleConnectivity() {
	g, _ := core.New(core.Spec{NodeCount: 4, RawEdges: []core.RawEdge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, {From: 2, To: 3},
	}})
	res, _ := dfs.Connectivity(g)
	fmt.Println("bridges:", res.Bridges)
	fmt.Println("articulation points:", res.ArticulationPoints)
	// Output:
	// bridges: [{2 3 1}]
	// articulation points: [2]
}

// ExampleDetectCycle prints the witness of a directed cycle.
func ExampleDetectCycle() {
	g, _ := core.New(core.Spec{NodeCount: 3, Directed: true, RawEdges: []core.RawEdge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1},
	}})
	cycle, _ := dfs.DetectCycle(g)
	fmt.Println(cycle)
	// Output: [1 2 1]
}
