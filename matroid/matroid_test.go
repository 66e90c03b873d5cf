// SPDX-License-Identifier: MIT

package matroid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matroid"
)

func graph(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = core.E(p[0], p[1])
	}
	g, err := core.NewGraph(n, edges...)
	require.NoError(t, err)

	return g
}

func complete(t *testing.T, n int) *core.Graph {
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return graph(t, n, pairs...)
}

func path(t *testing.T, n int) *core.Graph {
	var pairs [][2]int
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return graph(t, n, pairs...)
}

func cycle(t *testing.T, n int) *core.Graph {
	var pairs [][2]int
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}

	return graph(t, n, pairs...)
}

// laman4 is a triangle plus a vertex joined to two of its corners.
func laman4(t *testing.T) *core.Graph {
	return graph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3})
}

func TestCliqueNumber(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want int
	}{
		{"empty", graph(t, 0), 0},
		{"isolated", graph(t, 3), 1},
		{"path5", path(t, 5), 2},
		{"K4", complete(t, 4), 4},
		{"K5", complete(t, 5), 5},
		{"laman4", laman4(t), 3},
		{"square", cycle(t, 4), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, exact, err := matroid.CliqueNumber(tc.g)
			require.NoError(t, err)
			assert.True(t, exact)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCliqueNumber_GreedyAboveLimit(t *testing.T) {
	// K4 on 0..3 plus a long tail: 12 vertices, greedy from any K4 seed finds 4.
	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i := 3; i < 11; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	g := graph(t, 12, pairs...)

	got, exact, err := matroid.CliqueNumber(g)
	require.NoError(t, err)
	assert.False(t, exact)
	assert.Equal(t, 4, got)

	got, exact, err = matroid.CliqueNumber(g, matroid.WithExactCliqueLimit(12))
	require.NoError(t, err)
	assert.True(t, exact)
	assert.Equal(t, 4, got)
}

func TestCliqueNumber_Errors(t *testing.T) {
	_, _, err := matroid.CliqueNumber(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	big, err := core.NewGraph(65)
	require.NoError(t, err)
	_, _, err = matroid.CliqueNumber(big)
	assert.ErrorIs(t, err, core.ErrTooManyVertices)
}

func TestMaximalCliques(t *testing.T) {
	t.Run("hinged tetrahedra", func(t *testing.T) {
		// two K4 sharing edge 0-1: {0,1,2,3} and {0,1,4,5}
		g := graph(t, 6,
			[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3},
			[2]int{0, 4}, [2]int{0, 5}, [2]int{1, 4}, [2]int{1, 5}, [2]int{4, 5})
		got, err := matroid.MaximalCliques(g)
		require.NoError(t, err)
		assert.Equal(t, [][]core.VertexID{{0, 1, 2, 3}, {0, 1, 4, 5}}, got)
	})

	t.Run("sorted by size", func(t *testing.T) {
		// K4 on 0..3 and a triangle 3,4,5
		g := graph(t, 6,
			[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3},
			[2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5})
		got, err := matroid.MaximalCliques(g)
		require.NoError(t, err)
		assert.Equal(t, [][]core.VertexID{{0, 1, 2, 3}, {3, 4, 5}}, got)
	})

	t.Run("triangle-free yields none", func(t *testing.T) {
		got, err := matroid.MaximalCliques(cycle(t, 5))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCheckLaman(t *testing.T) {
	t.Run("laman4", func(t *testing.T) {
		res, err := matroid.CheckLaman(laman4(t))
		require.NoError(t, err)
		assert.True(t, res.IsLaman)
		assert.True(t, res.IsMinimallyRigid2D)
		assert.True(t, res.Exhaustive)
	})

	t.Run("triangle", func(t *testing.T) {
		res, err := matroid.CheckLaman(complete(t, 3))
		require.NoError(t, err)
		assert.True(t, res.IsLaman)
	})

	t.Run("square fails the count", func(t *testing.T) {
		res, err := matroid.CheckLaman(cycle(t, 4))
		require.NoError(t, err)
		assert.False(t, res.IsLaman)
		assert.Contains(t, res.Reason, "edge count 4 != 2*4-3 = 5")
	})

	t.Run("right count, over-braced part", func(t *testing.T) {
		// K4 on 0..3 (6 edges) plus a pendant vertex 4: 7 edges = 2*5-3
		g := graph(t, 5,
			[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3},
			[2]int{3, 4})
		res, err := matroid.CheckLaman(g)
		require.NoError(t, err)
		assert.False(t, res.IsLaman)
		assert.Equal(t, 4, res.ViolatingSize)
		assert.Equal(t, 6, res.ViolatingEdges)
		assert.Equal(t, []core.VertexID{0, 1, 2, 3}, res.ViolatingVertices)
	})

	t.Run("too few vertices", func(t *testing.T) {
		res, err := matroid.CheckLaman(graph(t, 1))
		require.NoError(t, err)
		assert.False(t, res.IsLaman)
	})

	t.Run("capped above the exhaustive limit", func(t *testing.T) {
		// Henneberg chain: each new vertex attaches to the previous two. 10 vertices, 17 edges.
		pairs := [][2]int{{0, 1}}
		for v := 2; v < 10; v++ {
			pairs = append(pairs, [2]int{v - 2, v}, [2]int{v - 1, v})
		}
		res, err := matroid.CheckLaman(graph(t, 10, pairs...))
		require.NoError(t, err)
		assert.True(t, res.IsLaman)
		assert.False(t, res.Exhaustive)
	})

	t.Run("raised cap covering every subset is exhaustive", func(t *testing.T) {
		pairs := [][2]int{{0, 1}}
		for v := 2; v < 9; v++ {
			pairs = append(pairs, [2]int{v - 2, v}, [2]int{v - 1, v})
		}
		res, err := matroid.CheckLaman(graph(t, 9, pairs...), matroid.WithMaxSubsetSize(9))
		require.NoError(t, err)
		assert.True(t, res.IsLaman)
		assert.True(t, res.Exhaustive)
		assert.Equal(t, "edge count and every subgraph satisfy the Laman bound", res.Reason)
	})
}

func TestLamanThreshold(t *testing.T) {
	assert.Equal(t, 5, matroid.LamanThreshold(4, 2))
	assert.Equal(t, 6, matroid.LamanThreshold(4, 3))
	assert.Equal(t, 3, matroid.LamanThreshold(3, 3))
	assert.Equal(t, 1, matroid.LamanThreshold(2, 2))
	assert.Equal(t, 1, matroid.LamanThreshold(2, 3))
}

func TestFindCircuits(t *testing.T) {
	t.Run("K4 in 2D is a circuit", func(t *testing.T) {
		got, err := matroid.FindCircuits(complete(t, 4), 2)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"}}, got)
	})

	t.Run("K4 in 3D is independent", func(t *testing.T) {
		got, err := matroid.FindCircuits(complete(t, 4), 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("K5 in 3D is a circuit", func(t *testing.T) {
		got, err := matroid.FindCircuits(complete(t, 5), 3)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Len(t, got[0], 10)
	})

	t.Run("K5 in 2D holds five K4 circuits and no minimal 5-set", func(t *testing.T) {
		got, err := matroid.FindCircuits(complete(t, 5), 2)
		require.NoError(t, err)
		assert.Len(t, got, 5)
		for _, c := range got {
			assert.Len(t, c, 6)
		}
	})

	t.Run("Laman graphs have none", func(t *testing.T) {
		got, err := matroid.FindCircuits(laman4(t), 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestComputeMinimalDimension(t *testing.T) {
	for n := 2; n <= 7; n++ {
		t.Run(fmt.Sprintf("path%d", n), func(t *testing.T) {
			g := path(t, n)
			d, err := matroid.ComputeMinimalDimension(g)
			require.NoError(t, err)
			assert.Equal(t, 1, d)
			ok, err := matroid.IsPathLike(g)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	d, err := matroid.ComputeMinimalDimension(complete(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = matroid.ComputeMinimalDimension(complete(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	star := graph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	d, err = matroid.ComputeMinimalDimension(star)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	ok, err := matroid.IsPathLike(star)
	require.NoError(t, err)
	assert.False(t, ok)

	d, err = matroid.ComputeMinimalDimension(graph(t, 0))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestIsTree(t *testing.T) {
	ok, err := matroid.IsTree(path(t, 4))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matroid.IsTree(cycle(t, 4))
	require.NoError(t, err)
	assert.False(t, ok)

	// right edge count but disconnected: triangle plus isolated vertex
	ok, err = matroid.IsTree(graph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnalyze(t *testing.T) {
	rep, err := matroid.Analyze(complete(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, rep.CliqueNumber)
	assert.True(t, rep.CliqueExact)
	assert.Equal(t, [][]core.VertexID{{0, 1, 2, 3}}, rep.MaximalCliques)
	assert.False(t, rep.Laman.IsLaman)
	assert.Len(t, rep.Circuits, 1)
	assert.Equal(t, 2, rep.CircuitDimension)
	assert.Equal(t, 3, rep.MinimalDimension)
	assert.Equal(t, 3, rep.MaxDegree)
	assert.False(t, rep.IsTree)

	rep, err = matroid.Analyze(complete(t, 4), matroid.WithCircuitDimension(3))
	require.NoError(t, err)
	assert.Empty(t, rep.Circuits)
}

func TestWithMaxSubsetSize(t *testing.T) {
	assert.Panics(t, func() { matroid.WithMaxSubsetSize(1) })

	// the only circuit of K4 needs 4 vertices
	got, err := matroid.FindCircuits(complete(t, 4), 2, matroid.WithMaxSubsetSize(3))
	require.NoError(t, err)
	assert.Empty(t, got)

	res, err := matroid.CheckLaman(laman4(t), matroid.WithMaxSubsetSize(3))
	require.NoError(t, err)
	assert.True(t, res.IsLaman)
	assert.False(t, res.Exhaustive)
}
