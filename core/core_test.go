package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// TestValidate_Accepts covers the boundary shapes that must pass.
func TestValidate_Accepts(t *testing.T) {
	cases := []struct {
		name string
		spec core.Spec
	}{
		{"empty", core.Spec{}},
		{"single node", core.Spec{NodeCount: 1}},
		{"unweighted nil weights", core.Spec{NodeCount: 2, RawEdges: []core.RawEdge{{From: 0, To: 1}}}},
		{"weighted negative", core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1, Weight: core.W(-3)}}}},
		{"self loop", core.Spec{NodeCount: 1, Directed: true, RawEdges: []core.RawEdge{{From: 0, To: 0}}}},
		{"max nodes", core.Spec{NodeCount: core.MaxNodeCount}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, core.Validate(tc.spec))
		})
	}
}

// TestValidate_Rejects checks every sentinel is reachable and wrapped.
func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		spec  core.Spec
		want  error
		field string
		index int
	}{
		{"negative nodes", core.Spec{NodeCount: -1}, core.ErrNegativeNodeCount, "nodeCount", -1},
		{"too many nodes", core.Spec{NodeCount: core.MaxNodeCount + 1}, core.ErrTooManyNodes, "nodeCount", -1},
		{"negative from", core.Spec{NodeCount: 3, RawEdges: []core.RawEdge{{From: 0, To: 1}, {From: -1, To: 1}}}, core.ErrOutOfRange, "rawEdges[1].from", 1},
		{"to too large", core.Spec{NodeCount: 3, RawEdges: []core.RawEdge{{From: 0, To: 3}}}, core.ErrOutOfRange, "rawEdges[0].to", 0},
		{"missing weight", core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1}}}, core.ErrMissingWeight, "rawEdges[0].weight", 0},
		{"NaN weight", core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1, Weight: core.W(math.NaN())}}}, core.ErrNonFiniteWeight, "rawEdges[0].weight", 0},
		{"Inf weight", core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1, Weight: core.W(math.Inf(1))}}}, core.ErrNonFiniteWeight, "rawEdges[0].weight", 0},
		{"huge weight", core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1, Weight: core.W(1e308)}}}, core.ErrWeightTooLarge, "rawEdges[0].weight", 0},
		{"huge negative weight", core.Spec{NodeCount: 3, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1, Weight: core.W(1)}, {From: 1, To: 2, Weight: core.W(-1e301)}}}, core.ErrWeightTooLarge, "rawEdges[1].weight", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(tc.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, core.ErrInvalidSpec) // umbrella always matches
			assert.True(t, core.IsValidation(err))

			var ve *core.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.index, ve.Index)
		})
	}
}

// TestNormalize_UndirectedWeightedKeepsLighter mirrors the canonical example:
// (0,1,5),(1,0,3) collapse to a single 0-1 edge carrying weight 3.
func TestNormalize_UndirectedWeightedKeepsLighter(t *testing.T) {
	spec := core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{
		{From: 0, To: 1, Weight: core.W(5)},
		{From: 1, To: 0, Weight: core.W(3)},
	}}
	edges, err := core.Normalize(spec)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 3.0, edges[0].Weight)
}

// TestNormalize_DirectedKeepsBothDirections ensures ordered keys stay apart.
func TestNormalize_DirectedKeepsBothDirections(t *testing.T) {
	spec := core.Spec{NodeCount: 2, Directed: true, Weighted: true, RawEdges: []core.RawEdge{
		{From: 0, To: 1, Weight: core.W(5)},
		{From: 1, To: 0, Weight: core.W(3)},
	}}
	edges, err := core.Normalize(spec)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 5}, {From: 1, To: 0, Weight: 3}}, edges)
}

// TestNormalize_TiesAndUnweighted: ties keep the first weighted occurrence and
// unweighted graphs always keep the first with weight 1.
func TestNormalize_TiesAndUnweighted(t *testing.T) {
	tie := core.Spec{NodeCount: 3, Weighted: true, RawEdges: []core.RawEdge{
		{From: 2, To: 1, Weight: core.W(4)},
		{From: 0, To: 1, Weight: core.W(9)},
		{From: 1, To: 2, Weight: core.W(4)},
	}}
	edges, err := core.Normalize(tie)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 1, Weight: 4}, {From: 0, To: 1, Weight: 9}}, edges)

	plain := core.Spec{NodeCount: 2, RawEdges: []core.RawEdge{
		{From: 1, To: 0, Weight: core.W(7)},
		{From: 0, To: 1},
	}}
	edges, err = core.Normalize(plain)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 1}}, edges)
}

// TestNormalize_OutOfRange reports the raw index.
func TestNormalize_OutOfRange(t *testing.T) {
	_, err := core.Normalize(core.Spec{NodeCount: 1, RawEdges: []core.RawEdge{{From: 0, To: 0}, {From: 0, To: 4}}})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestNew_AdjacencyShape checks mirroring, insertion order and copy semantics.
func TestNew_AdjacencyShape(t *testing.T) {
	g, err := core.New(core.Spec{NodeCount: 4, RawEdges: []core.RawEdge{
		{From: 0, To: 1}, {From: 2, To: 0}, {From: 1, To: 0}, {From: 3, To: 3},
	}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
	assert.Equal(t, 3, g.EdgeCount())
	// self-loop appears twice on an undirected row
	assert.Equal(t, core.AdjacencyList{{1, 2}, {0}, {0}, {3, 3}}, g.AdjacencyList())

	adj := g.AdjacencyList()
	adj[0][0] = 99
	assert.Equal(t, []int{1, 2}, g.Neighbors(0)) // deep copy
	assert.Nil(t, g.Neighbors(-1))
	assert.Nil(t, g.Neighbors(4))

	e, ok := g.Edge(1, 0)
	assert.True(t, ok)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 1}, e)
	_, ok = g.Edge(1, 2)
	assert.False(t, ok)
}

// TestNew_Directed keeps rows one-way and isolates empty rows as [].
func TestNew_Directed(t *testing.T) {
	g, err := core.New(core.Spec{NodeCount: 3, Directed: true, RawEdges: []core.RawEdge{{From: 0, To: 2}}})
	require.NoError(t, err)
	adj := g.AdjacencyList()
	assert.Equal(t, []int{2}, adj[0])
	assert.NotNil(t, adj[1])
	assert.Empty(t, adj[1])

	_, ok := g.Edge(2, 0)
	assert.False(t, ok)
}

// TestNew_Invalid propagates validation errors.
func TestNew_Invalid(t *testing.T) {
	_, err := core.New(core.Spec{NodeCount: 2, Weighted: true, RawEdges: []core.RawEdge{{From: 0, To: 1}}})
	assert.ErrorIs(t, err, core.ErrMissingWeight)
}

// TestFromEdges_RejectsDuplicates guards the one-edge-per-pair invariant.
func TestFromEdges_RejectsDuplicates(t *testing.T) {
	_, err := core.FromEdges(2, false, false, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 0, Weight: 1}})
	assert.Error(t, err)

	_, err = core.FromEdges(-1, false, false, nil)
	assert.ErrorIs(t, err, core.ErrNegativeNodeCount)

	g, err := core.FromEdges(2, true, false, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 0, Weight: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}
