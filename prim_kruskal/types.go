// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// ErrInvalidGraph indicates that MST algorithms require a weighted graph.
// Returned when graph is nil or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a weighted graph")

// ErrRootOutOfRange indicates that Prim's root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that a spanning tree covering all vertices cannot be
// formed. An empty graph (|V| == 0) is reported as disconnected as well.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than prim or kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Both algorithms treat every edge as undirected, so a weighted directed graph
// yields the spanning tree of its underlying undirected graph.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal rooted at 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the tree edges (empty for a single vertex), their total weight and
// ErrInvalidGraph, ErrDisconnected, ErrRootOutOfRange or ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}
