// SPDX-License-Identifier: MIT

// types.go declares Spec, RawEdge, Edge, AdjacencyList, the sentinel errors
// and the ValidationError type.

package core

import (
	"errors"
	"fmt"
)

// MaxNodeCount is the largest node count accepted by Validate. It mirrors the
// upper bound of the original input form.
const MaxNodeCount = 200000

// MaxAbsWeight bounds |weight| on weighted graphs. Any sum of two simple-path
// lengths over MaxNodeCount nodes then stays within float64 range, so path
// sums never overflow to ±Inf.
const MaxAbsWeight = 1e300

// Sentinel errors for spec validation.
var (
	// ErrInvalidSpec is the umbrella every ValidationError matches via errors.Is.
	ErrInvalidSpec = errors.New("core: invalid graph spec")

	// ErrNegativeNodeCount indicates nodeCount < 0.
	ErrNegativeNodeCount = errors.New("core: node count is negative")

	// ErrTooManyNodes indicates nodeCount > MaxNodeCount.
	ErrTooManyNodes = errors.New("core: node count exceeds limit")

	// ErrOutOfRange indicates an edge endpoint outside [0, nodeCount).
	ErrOutOfRange = errors.New("core: node id out of range")

	// ErrMissingWeight indicates a weighted graph edge without a weight.
	ErrMissingWeight = errors.New("core: weight required for weighted graph")

	// ErrNonFiniteWeight indicates a NaN or infinite weight on a weighted graph.
	ErrNonFiniteWeight = errors.New("core: weight is not finite")

	// ErrWeightTooLarge indicates |weight| > MaxAbsWeight.
	ErrWeightTooLarge = errors.New("core: weight magnitude exceeds limit")
)

// RawEdge is one edge as supplied by a caller. Weight is optional; a nil
// Weight on a weighted graph is a validation error, on an unweighted graph
// it is ignored.
type RawEdge struct {
	From   int      `json:"from" yaml:"from" validate:"gte=0"`
	To     int      `json:"to" yaml:"to" validate:"gte=0"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Spec describes one analysis request: how many nodes, how to read the
// edges, and the raw edge list in input order.
type Spec struct {
	// NodeCount is the number of vertices; ids are 0..NodeCount-1.
	NodeCount int `json:"nodeCount" yaml:"nodeCount" validate:"gte=0,lte=200000"`

	// Directed selects one-way edges; otherwise every edge is mirrored.
	Directed bool `json:"directed" yaml:"directed"`

	// Weighted selects per-edge weights; otherwise every edge weighs 1.
	Weighted bool `json:"weighted" yaml:"weighted"`

	// RawEdges holds the edges in input order, duplicates included.
	RawEdges []RawEdge `json:"rawEdges" yaml:"rawEdges" validate:"dive"`
}

// W is a small helper returning a pointer to w, handy for RawEdge literals.
func W(w float64) *float64 { return &w }

// Edge is a canonical, deduplicated edge. Weight is 1 on unweighted graphs.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// AdjacencyList maps node id → neighbor ids in edge insertion order.
type AdjacencyList [][]int

// ValidationError reports why a Spec was rejected. Field names the offending
// input ("nodeCount", "rawEdges[3].to", ...), Index is the raw edge index or
// -1 for spec-level problems, and Err is one of the sentinels above.
type ValidationError struct {
	Field string
	Index int
	Value any
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s (%s=%v)", e.Err, e.Field, e.Value)
	}

	return fmt.Sprintf("%s (%s)", e.Err, e.Field)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every ValidationError match ErrInvalidSpec.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidSpec }

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}

// newEdgeError builds a ValidationError for the raw edge at index i.
func newEdgeError(i int, field string, value any, err error) *ValidationError {
	return &ValidationError{
		Field: fmt.Sprintf("rawEdges[%d].%s", i, field),
		Index: i,
		Value: value,
		Err:   err,
	}
}
