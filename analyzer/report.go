package analyzer

import (
	"encoding/json"

	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/matrix"
)

// Report is the immutable result of one analysis. Optional results are nil
// when absent; see the package doc for the presence rules.
type Report struct {
	adjacencyMatrix    *matrix.Dense
	adjacencyList      core.AdjacencyList
	distanceMatrix     *matrix.Distances
	hasCycle           bool
	hasNegativeCycle   bool
	topologicalOrder   []int
	spanningTree       []core.Edge
	spanningTreeWeight float64
	bridges            []core.Edge
	articulationPoints []int
}

// NodeCount returns n.
func (r *Report) NodeCount() int { return r.adjacencyMatrix.Rows() }

// AdjacencyMatrix returns a copy of the adjacency matrix.
func (r *Report) AdjacencyMatrix() *matrix.Dense { return r.adjacencyMatrix.Clone() }

// AdjacencyList returns a deep copy of the adjacency list.
func (r *Report) AdjacencyList() core.AdjacencyList {
	out := make(core.AdjacencyList, len(r.adjacencyList))
	for i, row := range r.adjacencyList {
		out[i] = append([]int{}, row...)
	}

	return out
}

// DistanceMatrix returns a copy of the distance grid rows.
func (r *Report) DistanceMatrix() [][]matrix.Distance { return r.distanceMatrix.Rows() }

// Distance returns cell (i, j) of the distance matrix.
func (r *Report) Distance(i, j int) (matrix.Distance, error) { return r.distanceMatrix.At(i, j) }

// HasCycle reports whether the graph has a cycle.
func (r *Report) HasCycle() bool { return r.hasCycle }

// HasNegativeCycle reports the Bellman-Ford result (false unless weighted and directed).
func (r *Report) HasNegativeCycle() bool { return r.hasNegativeCycle }

// TopologicalOrder returns the order and whether it is present.
func (r *Report) TopologicalOrder() ([]int, bool) {
	return cloneInts(r.topologicalOrder), r.topologicalOrder != nil
}

// SpanningTree returns the tree edges, their total weight and whether the tree is present.
func (r *Report) SpanningTree() ([]core.Edge, float64, bool) {
	return cloneEdges(r.spanningTree), r.spanningTreeWeight, r.spanningTree != nil
}

// Bridges returns the bridges and whether they are present.
func (r *Report) Bridges() ([]core.Edge, bool) {
	return cloneEdges(r.bridges), r.bridges != nil
}

// ArticulationPoints returns the articulation points and whether they are present.
func (r *Report) ArticulationPoints() ([]int, bool) {
	return cloneInts(r.articulationPoints), r.articulationPoints != nil
}

// reportDTO is the interface shape shared by JSON and YAML.
type reportDTO struct {
	AdjacencyMatrix    *matrix.Dense      `json:"adjacencyMatrix" yaml:"adjacencyMatrix"`
	AdjacencyList      core.AdjacencyList `json:"adjacencyList" yaml:"adjacencyList"`
	DistanceMatrix     *matrix.Distances  `json:"distanceMatrix" yaml:"distanceMatrix"`
	HasCycle           bool               `json:"hasCycle" yaml:"hasCycle"`
	HasNegativeCycle   bool               `json:"hasNegativeCycle" yaml:"hasNegativeCycle"`
	TopologicalOrder   []int              `json:"topologicalOrder" yaml:"topologicalOrder"`
	SpanningTree       []core.Edge        `json:"spanningTree" yaml:"spanningTree"`
	Bridges            []core.Edge        `json:"bridges" yaml:"bridges"`
	ArticulationPoints []int              `json:"articulationPoints" yaml:"articulationPoints"`
}

func (r *Report) dto() reportDTO {
	return reportDTO{
		AdjacencyMatrix:    r.adjacencyMatrix,
		AdjacencyList:      r.adjacencyList,
		DistanceMatrix:     r.distanceMatrix,
		HasCycle:           r.hasCycle,
		HasNegativeCycle:   r.hasNegativeCycle,
		TopologicalOrder:   r.topologicalOrder,
		SpanningTree:       r.spanningTree,
		Bridges:            r.bridges,
		ArticulationPoints: r.articulationPoints,
	}
}

// MarshalJSON encodes the report in the interface shape.
func (r *Report) MarshalJSON() ([]byte, error) { return json.Marshal(r.dto()) }

// MarshalYAML encodes the report in the interface shape.
func (r *Report) MarshalYAML() (interface{}, error) { return r.dto(), nil }

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}

	return append([]int{}, s...)
}

func cloneEdges(s []core.Edge) []core.Edge {
	if s == nil {
		return nil
	}

	return append([]core.Edge{}, s...)
}
