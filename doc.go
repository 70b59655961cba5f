// Package graphanalyzer is the root of graphalyze, an engine that takes a
// graph spec (node count, directedness, weightedness, raw edges) and
// produces one analysis report.
//
// The report carries:
//
//	adjacency   - list and dense matrix views (core, matrix)
//	distances   - all-pairs shortest paths, Floyd–Warshall (matrix)
//	cycles      - any cycle (dfs) and negative cycles, Bellman–Ford (bellman_ford)
//	ordering    - topological order for DAGs, Kahn (bfs)
//	spanning    - minimum spanning tree, Kruskal or Prim (prim_kruskal)
//	cut points  - bridges and articulation points (dfs)
//
// analyzer assembles the report. builder emits fixture specs, specio reads
// and writes JSON or YAML, cache stores finished reports, and the
// graphalyze command (cmd/graphalyze) exposes everything as a CLI and an
// HTTP API.
//
// Quick example:
//
//	    0───1
//	     \  │
//	      \ │
//	        2
//
//	spec := core.Spec{NodeCount: 3, RawEdges: []core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}}
//	rep, _ := analyzer.Analyze(spec)
//	rep.HasCycle() // true
//
// Install the command:
//
//	go install github.com/ani18605/GRAPH-ANALYZER/cmd/graphalyze@latest
package graphanalyzer
