// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves never panic.

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	directed bool       // emitted spec is directed
	weighted bool       // edges carry weights from weightFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn   // used only when weighted
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over deterministic defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirected marks the generated spec as directed.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithWeighted marks the generated spec as weighted; every edge gets a weight.
func WithWeighted() BuilderOption {
	return func(c *builderConfig) { c.weighted = true }
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
