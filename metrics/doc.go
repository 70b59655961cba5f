// Package metrics exposes Prometheus collectors for the analyzer.
//
// A *Metrics implements analyzer.Hooks and cache.Hooks, so one value is
// passed to analyzer.WithHooks and cache.Instrumented. Collectors register
// on the Registerer given to New; tests pass a fresh prometheus.NewRegistry().
package metrics
