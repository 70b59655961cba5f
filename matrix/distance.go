package matrix

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind tags a Distance cell.
type Kind uint8

const (
	// KindZero is the diagonal: a node's distance to itself.
	KindZero Kind = iota
	// KindFinite is an ordinary shortest-path length.
	KindFinite
	// KindUnreachable means no path exists.
	KindUnreachable
	// KindNegativeInfinity means the pair can be routed through a negative cycle.
	KindNegativeInfinity
)

// UnreachableValue is the number Unreachable takes at the JSON/YAML boundary.
const UnreachableValue = -1

// NegativeInfinityText is the string NegativeInfinity takes at the boundary.
const NegativeInfinityText = "-Infinity"

// String returns the tag name.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindFinite:
		return "finite"
	case KindUnreachable:
		return "unreachable"
	case KindNegativeInfinity:
		return "negative-infinity"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Distance is one cell of a distance matrix. Only Finite cells carry a value.
type Distance struct {
	kind  Kind
	value float64
}

// Zero returns the diagonal cell.
func Zero() Distance { return Distance{kind: KindZero} }

// Finite returns a cell holding the path length d.
func Finite(d float64) Distance { return Distance{kind: KindFinite, value: d} }

// Unreachable returns the "no path" cell.
func Unreachable() Distance { return Distance{kind: KindUnreachable} }

// NegativeInfinity returns the "through a negative cycle" cell.
func NegativeInfinity() Distance { return Distance{kind: KindNegativeInfinity} }

// Kind returns the cell tag.
func (d Distance) Kind() Kind { return d.kind }

// Value returns the path length for Finite cells and 0 otherwise.
func (d Distance) Value() float64 { return d.value }

// Float converts the cell to float64 using 0, d, +Inf and -Inf.
func (d Distance) Float() float64 {
	switch d.kind {
	case KindFinite:
		return d.value
	case KindUnreachable:
		return math.Inf(1)
	case KindNegativeInfinity:
		return math.Inf(-1)
	default:
		return 0
	}
}

// String renders the cell the way it appears at the boundary.
func (d Distance) String() string {
	switch d.kind {
	case KindFinite:
		return fmt.Sprint(d.value)
	case KindUnreachable:
		return fmt.Sprint(UnreachableValue)
	case KindNegativeInfinity:
		return NegativeInfinityText
	default:
		return "0"
	}
}

// boundary returns the interface value: 0, d, -1 or "-Infinity".
func (d Distance) boundary() interface{} {
	switch d.kind {
	case KindFinite:
		return d.value
	case KindUnreachable:
		return UnreachableValue
	case KindNegativeInfinity:
		return NegativeInfinityText
	default:
		return 0
	}
}

// MarshalJSON implements json.Marshaler.
func (d Distance) MarshalJSON() ([]byte, error) { return json.Marshal(d.boundary()) }

// MarshalYAML implements yaml.Marshaler.
func (d Distance) MarshalYAML() (interface{}, error) { return d.boundary(), nil }

// Distances is an immutable n×n grid of Distance cells.
type Distances struct {
	n     int
	cells []Distance // row-major, len n*n
}

// NewDistances builds a grid from rows, rejecting non-square input.
func NewDistances(rows [][]Distance) (*Distances, error) {
	n := len(rows)
	ds := &Distances{n: n, cells: make([]Distance, 0, n*n)}
	for _, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf("NewDistances", ErrBadShape)
		}
		ds.cells = append(ds.cells, row...)
	}

	return ds, nil
}

// Size returns n.
func (ds *Distances) Size() int { return ds.n }

// At returns cell (i, j).
func (ds *Distances) At(i, j int) (Distance, error) {
	if i < 0 || i >= ds.n || j < 0 || j >= ds.n {
		return Distance{}, fmt.Errorf("Distances.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return ds.cells[i*ds.n+j], nil
}

// Rows returns a fresh copy of the grid. Every row is non-nil.
func (ds *Distances) Rows() [][]Distance {
	out := make([][]Distance, ds.n)
	for i := 0; i < ds.n; i++ {
		out[i] = make([]Distance, ds.n)
		copy(out[i], ds.cells[i*ds.n:(i+1)*ds.n])
	}

	return out
}

// MarshalJSON encodes the grid as rows of boundary values.
func (ds *Distances) MarshalJSON() ([]byte, error) { return json.Marshal(ds.Rows()) }

// MarshalYAML encodes the grid as rows of boundary values.
func (ds *Distances) MarshalYAML() (interface{}, error) { return ds.Rows(), nil }
