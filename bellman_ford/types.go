// Package bellman_ford defines the options, errors and result type of the
// Bellman-Ford relaxation over a core.Graph.
package bellman_ford

import "errors"

// AllSources selects the virtual-source policy: every vertex starts at 0.
const AllSources = -1

// Sentinel errors returned by Run and HasNegativeCycle.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("bellman_ford: graph is nil")

	// ErrSourceOutOfRange indicates a source id outside [0, n).
	ErrSourceOutOfRange = errors.New("bellman_ford: source vertex out of range")
)

// Options configures a Bellman-Ford run.
//
// Source – AllSources (default) seeds every vertex with distance 0, which
// finds a negative cycle anywhere in the graph. A concrete id seeds only
// that vertex, so only cycles reachable from it are found.
type Options struct {
	Source int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with Source = AllSources.
func DefaultOptions() Options {
	return Options{Source: AllSources}
}

// WithSource restricts the run to a single source vertex.
func WithSource(id int) Option {
	return func(o *Options) { o.Source = id }
}

// WithAllSources restores the default virtual-source policy.
func WithAllSources() Option {
	return func(o *Options) { o.Source = AllSources }
}

// Result is the outcome of Run.
type Result struct {
	// Dist holds the best distance found per vertex; +Inf means unreached.
	// Values are unreliable when NegativeCycle is true.
	Dist []float64

	// Prev holds the predecessor on the best path, -1 for none.
	Prev []int

	// NegativeCycle reports whether the detection round still relaxed an edge.
	NegativeCycle bool

	// Rounds is the number of relaxation rounds actually executed.
	Rounds int
}
