// Package bfs provides tunable options and error definitions
// for the breadth-first topological sort over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNotDirected is returned when the graph is undirected; a
	// topological order only exists for directed graphs.
	ErrNotDirected = errors.New("bfs: topological sort requires a directed graph")

	// ErrCycleDetected is returned when some vertices never reach in-degree
	// zero, i.e. the graph contains a directed cycle.
	ErrCycleDetected = errors.New("bfs: cycle detected")
)

// Option configures TopologicalSort via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for TopologicalSort.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called as each vertex is appended to the order. Returning
	// an error aborts the sort and propagates that error.
	OnVisit func(id, position int) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// A nil context keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the per-vertex hook; nil keeps the no-op.
func WithOnVisit(fn func(id, position int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
