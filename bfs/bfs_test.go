package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/bfs"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// directed builds an unweighted directed graph from (from,to) pairs.
func directed(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	raw := make([]core.RawEdge, len(pairs))
	for i, p := range pairs {
		raw[i] = core.RawEdge{From: p[0], To: p[1]}
	}
	g, err := core.New(core.Spec{NodeCount: n, Directed: true, RawEdges: raw})
	require.NoError(t, err)

	return g
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := bfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := core.New(core.Spec{NodeCount: 2, RawEdges: []core.RawEdge{{From: 0, To: 1}}})
	require.NoError(t, err)
	_, err = bfs.TopologicalSort(g)
	assert.ErrorIs(t, err, bfs.ErrNotDirected)
}

// TestTopologicalSort_Diamond: {0→1, 0→2, 1→3, 2→3} sorts to [0,1,2,3].
func TestTopologicalSort_Diamond(t *testing.T) {
	g := directed(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3})
	order, err := bfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestTopologicalSort_SeedsInIDOrder(t *testing.T) {
	g := directed(t, 5, [2]int{4, 0}, [2]int{3, 1})
	order, err := bfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 1, 0}, order)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := bfs.TopologicalSort(directed(t, 0))
	require.NoError(t, err)
	assert.Empty(t, order)
	assert.NotNil(t, order)
}

func TestTopologicalSort_Cycles(t *testing.T) {
	_, err := bfs.TopologicalSort(directed(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1}))
	assert.ErrorIs(t, err, bfs.ErrCycleDetected)

	_, err = bfs.TopologicalSort(directed(t, 2, [2]int{0, 1}, [2]int{1, 1}))
	assert.ErrorIs(t, err, bfs.ErrCycleDetected)
}

// TestTopologicalSort_EveryEdgeForward checks the ordering invariant on a
// larger layered DAG.
func TestTopologicalSort_EveryEdgeForward(t *testing.T) {
	var pairs [][2]int
	for u := 0; u < 50; u++ {
		for v := u + 1; v < 50; v += 7 {
			pairs = append(pairs, [2]int{v, u}) // edges point to smaller ids
		}
	}
	g := directed(t, 50, pairs...)
	order, err := bfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 50)

	pos := make([]int, 50)
	for i, u := range order {
		pos[u] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
}

func TestTopologicalSort_OnVisitAndCancel(t *testing.T) {
	g := directed(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var seen []int
	_, err := bfs.TopologicalSort(g, bfs.WithOnVisit(func(id, pos int) error {
		seen = append(seen, id)
		assert.Equal(t, len(seen)-1, pos)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)

	boom := errors.New("boom")
	_, err = bfs.TopologicalSort(g, bfs.WithOnVisit(func(int, int) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.TopologicalSort(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
