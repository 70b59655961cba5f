package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/core"
	"github.com/ani18605/GRAPH-ANALYZER/dfs"
)

// build constructs an unweighted graph from (from,to) pairs.
func build(t testing.TB, n int, directed bool, pairs ...[2]int) *core.Graph {
	t.Helper()
	raw := make([]core.RawEdge, len(pairs))
	for i, p := range pairs {
		raw[i] = core.RawEdge{From: p[0], To: p[1]}
	}
	g, err := core.New(core.Spec{NodeCount: n, Directed: directed, RawEdges: raw})
	require.NoError(t, err)

	return g
}

// path returns the pairs of a 0-1-...-(n-1) path.
func path(n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		out = append(out, [2]int{i, i + 1})
	}

	return out
}

func TestDetectCycle_NilGraph(t *testing.T) {
	_, err := dfs.DetectCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.Connectivity(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestDetectCycle_Triangle: the triangle has a cycle both ways.
func TestDetectCycle_Triangle(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := build(t, 3, directed, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
		cycle, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 0}, cycle)
	}
}

func TestDetectCycle_DirectedDAG(t *testing.T) {
	// Diamond: the second visit of 3 is a cross edge, not a cycle.
	g := build(t, 4, true, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3})
	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestDetectCycle_UndirectedTreeAndForest(t *testing.T) {
	g := build(t, 6, false, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})
	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)

	// Two-node undirected "cycle" collapses to one edge and is acyclic.
	g = build(t, 2, false, [2]int{0, 1}, [2]int{1, 0})
	has, _ = dfs.HasCycle(g)
	assert.False(t, has)
}

func TestDetectCycle_SecondComponent(t *testing.T) {
	g := build(t, 5, true, [2]int{0, 1}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2})
	cycle, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 2}, cycle)
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := build(t, 2, directed, [2]int{0, 1}, [2]int{1, 1})
		cycle, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1}, cycle)
	}
}

func TestDetectCycle_DirectedTwoCycle(t *testing.T) {
	g := build(t, 2, true, [2]int{0, 1}, [2]int{1, 0})
	cycle, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, cycle)
}

func TestDetectCycle_Empty(t *testing.T) {
	g := build(t, 0, true)
	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)
}

// TestConnectivity_Path: on 0-1-2-3 every edge is a bridge and 1,2 are cut vertices.
func TestConnectivity_Path(t *testing.T) {
	g := build(t, 4, false, path(4)...)
	res, err := dfs.Connectivity(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 2, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 1, Weight: 1},
	}, res.Bridges)
	assert.Equal(t, []int{1, 2}, res.ArticulationPoints)
}

func TestConnectivity_Directed(t *testing.T) {
	_, err := dfs.Connectivity(build(t, 2, true, [2]int{0, 1}))
	assert.ErrorIs(t, err, dfs.ErrDirected)
}

// TestConnectivity_BowTie: two triangles sharing vertex 2 give one cut
// vertex and no bridges.
func TestConnectivity_BowTie(t *testing.T) {
	g := build(t, 5, false,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2},
	)
	res, err := dfs.Connectivity(g)
	require.NoError(t, err)
	assert.Empty(t, res.Bridges)
	assert.NotNil(t, res.Bridges)
	assert.Equal(t, []int{2}, res.ArticulationPoints)
}

// TestConnectivity_RootRule: star centre is the DFS root with three children.
func TestConnectivity_RootRule(t *testing.T) {
	g := build(t, 4, false, [2]int{0, 1}, [2]int{0, 2}, [2]int{3, 0})
	res, err := dfs.Connectivity(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.ArticulationPoints)
	// Canonical orientation is preserved for (3,0).
	assert.Contains(t, res.Bridges, core.Edge{From: 3, To: 0, Weight: 1})
	assert.Len(t, res.Bridges, 3)
}

func TestConnectivity_IsolatedAndSelfLoop(t *testing.T) {
	g := build(t, 3, false, [2]int{1, 1})
	res, err := dfs.Connectivity(g)
	require.NoError(t, err)
	assert.Empty(t, res.Bridges)
	assert.Empty(t, res.ArticulationPoints)
}

// TestLargePath_NoStackOverflow runs both walks on the maximum input size.
func TestLargePath_NoStackOverflow(t *testing.T) {
	if testing.Short() {
		t.Skip("large graph")
	}
	n := core.MaxNodeCount
	g := build(t, n, false, path(n)...)

	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)

	res, err := dfs.Connectivity(g)
	require.NoError(t, err)
	assert.Len(t, res.Bridges, n-1)
	assert.Len(t, res.ArticulationPoints, n-2)
}
