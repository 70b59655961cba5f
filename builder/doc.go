// Package builder generates graph specifications for tests, benchmarks and
// the `generate` command.
//
// A Constructor appends one topology to a core.Spec under construction. Build
// resolves the options, runs the constructors in order and validates the
// result. Every constructor numbers its own nodes from the current node count,
// so composing several constructors yields their disjoint union:
//
//	spec, err := builder.Build(
//		[]builder.BuilderOption{builder.WithWeighted(), builder.WithSeed(7)},
//		builder.Path(4),  // nodes 0..3
//		builder.Cycle(3), // nodes 4..6
//	)
//
// Topologies:
//
//   - Path(n)               n ≥ 2, edges i→i+1.
//   - Cycle(n)              n ≥ 3, edges i→(i+1) mod n.
//   - Star(n)               n ≥ 2, centre is the first node.
//   - Wheel(n)              n ≥ 4, centre plus a rim cycle of n-1 nodes.
//   - Complete(n)           n ≥ 1, every pair (ordered pairs when directed).
//   - CompleteBipartite(a,b) a,b ≥ 1, left side first.
//   - Grid(rows, cols)      4-neighbourhood; directed grids point right and down.
//   - RandomSparse(n, p)    each admissible pair kept with probability p.
//
// Weights are drawn only for weighted specs, by the configured WeightFn.
// Results are deterministic for equal options, seed and constructor order.
package builder
