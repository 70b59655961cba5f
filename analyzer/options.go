package analyzer

import (
	"io"

	"github.com/charmbracelet/log"

	bf "github.com/ani18605/GRAPH-ANALYZER/bellman_ford"
	"github.com/ani18605/GRAPH-ANALYZER/prim_kruskal"
)

// Options configures an Engine.
type Options struct {
	// Parallel runs the independent analyses concurrently.
	Parallel bool

	// Logger receives debug-level stage timings. Nil discards.
	Logger *log.Logger

	// Hooks receives engine events. Nil means NoopHooks.
	Hooks Hooks

	// MSTMethod is prim_kruskal.MethodKruskal (default) or MethodPrim.
	MSTMethod string

	// NegativeCycleSource is bellman_ford.AllSources (default) or a vertex id.
	NegativeCycleSource int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a sequential engine with Kruskal, the all-sources
// negative-cycle policy, a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Parallel:            false,
		Logger:              discardLogger(),
		Hooks:               NoopHooks{},
		MSTMethod:           prim_kruskal.MethodKruskal,
		NegativeCycleSource: bf.AllSources,
	}
}

// WithParallel toggles concurrent analyses.
func WithParallel(on bool) Option {
	return func(o *Options) { o.Parallel = on }
}

// WithLogger sets the engine logger; nil keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks installs h; nil keeps NoopHooks.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		if h != nil {
			o.Hooks = h
		}
	}
}

// WithMSTMethod selects the spanning tree algorithm.
func WithMSTMethod(m string) Option {
	return func(o *Options) { o.MSTMethod = m }
}

// WithNegativeCycleSource selects the Bellman-Ford seed; bellman_ford.AllSources
// seeds every vertex.
func WithNegativeCycleSource(id int) Option {
	return func(o *Options) { o.NegativeCycleSource = id }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
