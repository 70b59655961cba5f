// Package analyzer assembles a Report from a core.Spec.
//
// Pipeline:
//
//	Spec ─► core.New (validate + normalize) ─► adjacency matrix/list
//	     ─► { distances, cycle, negative cycle, topological order,
//	          spanning tree, connectivity } ─► Report
//
// The six analyses only read the immutable *core.Graph, so an Engine built
// WithParallel runs them on an errgroup and joins before assembling. The
// result is identical either way.
//
// Optional results follow fixed rules:
//
//	topologicalOrder    present iff directed and acyclic
//	spanningTree        present iff weighted and connected (n ≥ 1)
//	bridges, articulationPoints  present iff undirected
//
// Absent results encode as null, present-but-empty ones as [].
//
// A Report is immutable: accessors return copies. It marshals to JSON and
// YAML in the interface shape (Unreachable → -1, NegativeInfinity →
// "-Infinity") and to a lossless binary envelope for caching, since a
// Finite(-1) distance and Unreachable collide in the interface shape.
package analyzer
