package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/builder"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

type pair struct{ U, V int }

func pairs(s core.Spec) []pair {
	out := make([]pair, len(s.RawEdges))
	for i, e := range s.RawEdges {
		out[i] = pair{e.From, e.To}
	}

	return out
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []builder.BuilderOption
		ctor  builder.Constructor
		wantN int
		want  []pair
	}{
		{"Path(4)", nil, builder.Path(4), 4, []pair{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(3)", nil, builder.Cycle(3), 3, []pair{{0, 1}, {1, 2}, {2, 0}}},
		{"Star(4)", nil, builder.Star(4), 4, []pair{{0, 1}, {0, 2}, {0, 3}}},
		{"Wheel(4)", nil, builder.Wheel(4), 4, []pair{{1, 2}, {2, 3}, {3, 1}, {0, 1}, {0, 2}, {0, 3}}},
		{"Complete(3)", nil, builder.Complete(3), 3, []pair{{0, 1}, {0, 2}, {1, 2}}},
		{"Complete(3)/directed", []builder.BuilderOption{builder.WithDirected()}, builder.Complete(3), 3,
			[]pair{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}},
		{"Complete(1)", nil, builder.Complete(1), 1, []pair{}},
		{"CompleteBipartite(2,2)", nil, builder.CompleteBipartite(2, 2), 4, []pair{{0, 2}, {0, 3}, {1, 2}, {1, 3}}},
		{"Grid(2,3)", nil, builder.Grid(2, 3), 6,
			[]pair{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{"RandomSparse(3,1)", nil, builder.RandomSparse(3, 1), 3, []pair{{0, 1}, {0, 2}, {1, 2}}},
		{"RandomSparse(3,0)", nil, builder.RandomSparse(3, 0), 3, []pair{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := builder.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, spec.NodeCount)
			assert.Equal(t, tc.want, pairs(spec))
			assert.False(t, spec.Weighted)
			for _, e := range spec.RawEdges {
				assert.Nil(t, e.Weight)
			}
		})
	}
}

func TestBuild_ComposesDisjointBlocks(t *testing.T) {
	spec, err := builder.Build(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)

	assert.Equal(t, 5, spec.NodeCount)
	assert.Equal(t, []pair{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, pairs(spec))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"path too small", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too small", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"star too small", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"wheel too small", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete empty", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"bipartite empty side", nil, builder.CompleteBipartite(2, 0), builder.ErrTooFewVertices},
		{"grid zero rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"random p<0", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"random p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"random without rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"too many nodes", nil, builder.Path(core.MaxNodeCount + 1), builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_WeightsAndDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithWeighted(),
		builder.WithDirected(),
		builder.WithSeed(42),
		builder.WithUniformWeight(-3, 5),
	}

	a, err := builder.Build(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	// Fresh options so the RNG restarts from the seed.
	b, err := builder.Build([]builder.BuilderOption{
		builder.WithWeighted(),
		builder.WithDirected(),
		builder.WithSeed(42),
		builder.WithUniformWeight(-3, 5),
	}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a.Directed)
	assert.True(t, a.Weighted)
	require.NotEmpty(t, a.RawEdges)
	for _, e := range a.RawEdges {
		require.NotNil(t, e.Weight)
		assert.GreaterOrEqual(t, *e.Weight, -3.0)
		assert.LessOrEqual(t, *e.Weight, 5.0)
		assert.NotEqual(t, e.From, e.To)
	}

	_, err = core.New(a)
	assert.NoError(t, err)
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, -2.0, builder.UniformWeightFn(-2, 9)(nil))
	assert.Equal(t, 3.0, builder.NormalWeightFn(3.2, 1)(nil))

	spec, err := builder.Build([]builder.BuilderOption{
		builder.WithWeighted(), builder.WithConstantWeight(-4),
	}, builder.Path(3))
	require.NoError(t, err)
	for _, e := range spec.RawEdges {
		assert.Equal(t, -4.0, *e.Weight)
	}

	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
