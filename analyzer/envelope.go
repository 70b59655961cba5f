package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/matrix"
)

// envelopeVersion is bumped whenever the envelope layout changes; older
// payloads are rejected and behave like a cache miss upstream.
const envelopeVersion = 1

// ErrEnvelopeVersion indicates a binary payload from another layout version.
var ErrEnvelopeVersion = errors.New("analyzer: unsupported report envelope version")

// cell keeps the distance tag next to the value so Finite(-1) survives.
type cell struct {
	K matrix.Kind `json:"k"`
	V float64     `json:"v,omitempty"`
}

// envelope is the lossless storage form of a Report.
type envelope struct {
	Version            int                `json:"version"`
	AdjacencyMatrix    [][]float64        `json:"adjacencyMatrix"`
	AdjacencyList      core.AdjacencyList `json:"adjacencyList"`
	Distances          [][]cell           `json:"distances"`
	HasCycle           bool               `json:"hasCycle"`
	HasNegativeCycle   bool               `json:"hasNegativeCycle"`
	TopologicalOrder   []int              `json:"topologicalOrder"`
	SpanningTree       []core.Edge        `json:"spanningTree"`
	SpanningTreeWeight float64            `json:"spanningTreeWeight"`
	Bridges            []core.Edge        `json:"bridges"`
	ArticulationPoints []int              `json:"articulationPoints"`
}

// MarshalBinary implements encoding.BinaryMarshaler with a tagged layout
// that round-trips every distance kind.
func (r *Report) MarshalBinary() ([]byte, error) {
	rows := r.distanceMatrix.Rows()
	cells := make([][]cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]cell, len(row))
		for j, d := range row {
			cells[i][j] = cell{K: d.Kind(), V: d.Value()}
		}
	}

	return json.Marshal(envelope{
		Version:            envelopeVersion,
		AdjacencyMatrix:    r.adjacencyMatrix.Values(),
		AdjacencyList:      r.adjacencyList,
		Distances:          cells,
		HasCycle:           r.hasCycle,
		HasNegativeCycle:   r.hasNegativeCycle,
		TopologicalOrder:   r.topologicalOrder,
		SpanningTree:       r.spanningTree,
		SpanningTreeWeight: r.spanningTreeWeight,
		Bridges:            r.bridges,
		ArticulationPoints: r.articulationPoints,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Report) UnmarshalBinary(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("analyzer: decode envelope: %w", err)
	}
	if env.Version != envelopeVersion {
		return fmt.Errorf("%w: %d", ErrEnvelopeVersion, env.Version)
	}

	adj, err := matrix.FromRows(env.AdjacencyMatrix)
	if err != nil {
		return fmt.Errorf("analyzer: decode adjacency: %w", err)
	}
	rows := make([][]matrix.Distance, len(env.Distances))
	for i, row := range env.Distances {
		rows[i] = make([]matrix.Distance, len(row))
		for j, c := range row {
			if rows[i][j], err = fromCell(c); err != nil {
				return err
			}
		}
	}
	dist, err := matrix.NewDistances(rows)
	if err != nil {
		return fmt.Errorf("analyzer: decode distances: %w", err)
	}
	if env.AdjacencyList == nil {
		env.AdjacencyList = core.AdjacencyList{}
	}

	*r = Report{
		adjacencyMatrix:    adj,
		adjacencyList:      env.AdjacencyList,
		distanceMatrix:     dist,
		hasCycle:           env.HasCycle,
		hasNegativeCycle:   env.HasNegativeCycle,
		topologicalOrder:   env.TopologicalOrder,
		spanningTree:       env.SpanningTree,
		spanningTreeWeight: env.SpanningTreeWeight,
		bridges:            env.Bridges,
		articulationPoints: env.ArticulationPoints,
	}

	return nil
}

func fromCell(c cell) (matrix.Distance, error) {
	switch c.K {
	case matrix.KindZero:
		return matrix.Zero(), nil
	case matrix.KindFinite:
		return matrix.Finite(c.V), nil
	case matrix.KindUnreachable:
		return matrix.Unreachable(), nil
	case matrix.KindNegativeInfinity:
		return matrix.NegativeInfinity(), nil
	default:
		return matrix.Distance{}, fmt.Errorf("analyzer: %w: %d", matrix.ErrUnknownKind, c.K)
	}
}
