// SPDX-License-Identifier: MIT
//
// api.go - the Build orchestrator and the draft shared by constructors.

package builder

import (
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// Constructor appends one topology to d using the resolved builderConfig.
// Constructors validate parameters first and leave d untouched on error.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is a spec under construction.
type Draft struct {
	spec core.Spec
}

// NodeCount returns the number of nodes added so far.
func (d *Draft) NodeCount() int { return d.spec.NodeCount }

// addNodes reserves k new node ids and returns the first one.
func (d *Draft) addNodes(k int) int {
	base := d.spec.NodeCount
	d.spec.NodeCount += k

	return base
}

// addEdge appends u→v, drawing a weight when the spec is weighted.
func (d *Draft) addEdge(cfg builderConfig, u, v int) {
	e := core.RawEdge{From: u, To: v}
	if cfg.weighted {
		e.Weight = core.W(cfg.weightFn(cfg.rng))
	}
	d.spec.RawEdges = append(d.spec.RawEdges, e)
}

// Build resolves opts, applies cons in order and validates the result.
//
// Steps:
//  1. Resolve the builder configuration.
//  2. Run each constructor against one shared Draft.
//  3. Validate the spec with core.Validate.
//
// Any constructor error is wrapped as "Build: %w" and returned immediately.
func Build(opts []BuilderOption, cons ...Constructor) (core.Spec, error) {
	// 1. Config.
	cfg := newBuilderConfig(opts...)
	d := &Draft{spec: core.Spec{Directed: cfg.directed, Weighted: cfg.weighted, RawEdges: []core.RawEdge{}}}

	// 2. Constructors.
	for i, fn := range cons {
		if fn == nil {
			return core.Spec{}, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return core.Spec{}, fmt.Errorf("Build: %w", err)
		}
	}

	// 3. Validate.
	if err := core.Validate(d.spec); err != nil {
		return core.Spec{}, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return d.spec, nil
}
