package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdex/core"
)

// trio builds three vertices with overlapping episode sets:
//
//	A {1,2,3}  B {2,3,4}  C {5}
func trio(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 1, 2, 3))
	require.NoError(t, g.AddVertex("B", 2, 3, 4))
	require.NoError(t, g.AddVertex("C", 5))

	return g
}

// TestAddVertex_Validation covers empty names and out-of-range episodes.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex("X", 1, -2), core.ErrBadEpisode)
	assert.False(t, g.HasVertex("X"), "rejected vertex must not be created")

	require.NoError(t, g.AddVertex("X", 1))
	assert.ErrorIs(t, g.AddVertex("X", -1), core.ErrBadEpisode)
	eps, err := g.Episodes("X")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, eps, "rejected merge must not touch the set")
}

// TestAddVertex_MergeUnions verifies repeated AddVertex grows the set and never replaces it.
func TestAddVertex_MergeUnions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Han", 4, 5))
	require.NoError(t, g.AddVertex("Han", 5, 6, 6))
	require.NoError(t, g.AddVertex("Han"))

	eps, err := g.Episodes("Han")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, eps)
	assert.Equal(t, []string{"Han"}, g.Vertices())
	assert.Equal(t, 1, g.VertexCount())

	_, err = g.Episodes("Lando")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestConnect_WeightAndSymmetry verifies intersection weights mirrored in both directions.
func TestConnect_WeightAndSymmetry(t *testing.T) {
	g := trio(t)
	w, err := g.Connect("A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 2, w)

	w, err = g.Connect("A", "C")
	require.NoError(t, err)
	assert.Zero(t, w)

	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}} {
		ab, ok := g.Weight(p[0], p[1])
		require.True(t, ok)
		ba, ok := g.Weight(p[1], p[0])
		require.True(t, ok)
		assert.Equal(t, ab, ba)
	}
	_, ok := g.Weight("B", "C")
	assert.False(t, ok)
	_, ok = g.Weight("Z", "A")
	assert.False(t, ok)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestConnect_Errors covers loops, missing endpoints and empty names.
func TestConnect_Errors(t *testing.T) {
	g := trio(t)
	_, err := g.Connect("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, ok := g.Weight("A", "A")
	assert.False(t, ok)

	_, err = g.Connect("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Connect("Z", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Connect("", "A")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Zero(t, g.EdgeCount())
}

// TestConnect_RefreshAfterMerge verifies reconnecting recomputes without duplicating the edge.
func TestConnect_RefreshAfterMerge(t *testing.T) {
	g := trio(t)
	_, err := g.Connect("B", "C")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C", 2, 4))

	w, _ := g.Weight("B", "C")
	assert.Zero(t, w, "weights are a snapshot taken at Connect time")

	w, err = g.Connect("C", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 2, w)
	assert.Equal(t, 1, g.EdgeCount())
	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nb)
}

// TestNeighborsAndEdges verifies connection-order enumeration and single reporting per pair.
func TestNeighborsAndEdges(t *testing.T) {
	g := trio(t)
	for _, p := range [][2]string{{"B", "C"}, {"A", "C"}, {"A", "B"}} {
		_, err := g.Connect(p[0], p[1])
		require.NoError(t, err)
	}

	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, nb)

	out, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "C", To: "B", Weight: 0}, {From: "C", To: "A", Weight: 0}}, out)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "C", Weight: 0},
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "C", Weight: 0},
	}, g.Edges())
}

// TestMaxWeightPairs covers a unique maximum, ties, and the empty sentinel.
func TestMaxWeightPairs(t *testing.T) {
	g := core.NewGraph()
	max, pairs, err := g.MaxWeightPairs()
	assert.ErrorIs(t, err, core.ErrNoEdges)
	assert.EqualValues(t, -1, max)
	assert.Nil(t, pairs)

	g = trio(t)
	_, _ = g.Connect("A", "B")
	_, _ = g.Connect("A", "C")
	max, pairs, err = g.MaxWeightPairs()
	require.NoError(t, err)
	assert.EqualValues(t, 2, max)
	assert.Equal(t, []core.Edge{{From: "A", To: "B", Weight: 2}}, pairs)

	require.NoError(t, g.AddVertex("D", 1, 2))
	_, _ = g.Connect("D", "A")
	max, pairs, err = g.MaxWeightPairs()
	require.NoError(t, err)
	assert.EqualValues(t, 2, max)
	assert.Len(t, pairs, 2, "ties are all reported, each pair once")
}

// TestMaxWeightPairs_AllZero verifies that zero-weight edges still produce a maximum.
func TestMaxWeightPairs_AllZero(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X", 1))
	require.NoError(t, g.AddVertex("Y", 2))
	_, _ = g.Connect("X", "Y")
	max, pairs, err := g.MaxWeightPairs()
	require.NoError(t, err)
	assert.Zero(t, max)
	assert.Len(t, pairs, 1)
}

// TestVerticesWithEpisodeCount filters by exact cardinality in insertion order.
func TestVerticesWithEpisodeCount(t *testing.T) {
	g := trio(t)
	assert.Equal(t, []string{"A", "B"}, g.VerticesWithEpisodeCount(3))
	assert.Equal(t, []string{"C"}, g.VerticesWithEpisodeCount(1))
	assert.Empty(t, g.VerticesWithEpisodeCount(7))
	assert.NotNil(t, g.VerticesWithEpisodeCount(7))
}

// TestVertex_Accessors checks the per-vertex view of the episode set.
func TestVertex_Accessors(t *testing.T) {
	g := trio(t)
	a, err := g.Vertex("A")
	require.NoError(t, err)
	b, err := g.Vertex("B")
	require.NoError(t, err)

	assert.Equal(t, "A", a.ID)
	assert.Equal(t, 3, a.EpisodeCount())
	assert.Equal(t, int64(2), a.Shared(b))
	assert.Equal(t, a.Shared(b), b.Shared(a))

	_, err = g.Vertex("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
