// SPDX-License-Identifier: MIT

package folding_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkage/builder"
	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/folding"
)

func TestState_MinimalFrameworks(t *testing.T) {
	cases := map[string]int{
		"triangle":          2,
		"tetrahedron":       3,
		"square":            2,
		"laman4":            2,
		"hinged-tetrahedra": 3,
		"prism":             3,
		"octahedron":        3,
		"k5":                3,
	}
	e := folding.NewEngine()
	for name, dim := range cases {
		t.Run(name, func(t *testing.T) {
			st, err := e.State(example(t, name))
			require.NoError(t, err)
			assert.True(t, st.Minimal)
			assert.Empty(t, st.Candidates)
			assert.Equal(t, dim, st.Dimension)
			assert.Equal(t, fmt.Sprintf("minimal(%d)", dim), st.String())
		})
	}
}

func TestPath_AlignmentCandidates(t *testing.T) {
	e := folding.NewEngine()
	fw := example(t, "path5")

	st, err := e.State(fw)
	require.NoError(t, err)
	assert.False(t, st.Minimal)
	assert.Equal(t, "unfolded(3)", st.String())
	require.Len(t, st.Candidates, 4)

	first := st.Candidates[0]
	assert.Equal(t, folding.EdgeAlignment, first.Kind)
	assert.Equal(t, "align 2-1 anti-parallel to 2-3", first.Description)
	assert.Equal(t, []core.VertexID{0, 1}, first.Rotated)
	assert.Equal(t, 2, first.EdgeVectorRank)
	assert.True(t, first.LengthPreserving)

	aligns, err := e.EdgeAlignmentFolds(fw)
	require.NoError(t, err)
	assert.Len(t, aligns, 4)

	// a path has no cliques sharing an edge
	hinges, err := e.HingeFolds(fw)
	require.NoError(t, err)
	assert.Empty(t, hinges)
}

func TestMinimize_Path(t *testing.T) {
	fw := example(t, "path5")
	tr, err := folding.NewEngine().Minimize(fw)
	require.NoError(t, err)

	require.Len(t, tr.Steps, 1)
	require.Len(t, tr.History, 2)
	assert.Same(t, fw.Coords, tr.History[0])
	assert.True(t, tr.State.Minimal)
	assert.Equal(t, 2, tr.State.Dimension)
	requireLengthsKept(t, fw, tr.Final, folding.DefaultLengthTolerance)
}

func TestMinimize_StarReachesLine(t *testing.T) {
	fw := example(t, "star4")
	tr, err := folding.NewEngine().Minimize(fw)
	require.NoError(t, err)

	require.Len(t, tr.Steps, 2)
	assert.Equal(t, "align 0-1 anti-parallel to 0-2", tr.Steps[0].Description)
	assert.Equal(t, 1, tr.State.Dimension)
	assert.Equal(t, 1, tr.State.CoordinateRank)
	requireLengthsKept(t, fw, tr.Final, folding.DefaultLengthTolerance)
}

func TestMinimize_StepBudget(t *testing.T) {
	tr, err := folding.NewEngine(folding.WithMaxSteps(1)).Minimize(example(t, "star4"))
	require.NoError(t, err)
	assert.Len(t, tr.Steps, 1)
	assert.False(t, tr.State.Minimal)
	assert.Equal(t, 2, tr.State.Dimension)
}

func TestBook_CoplanarHinge(t *testing.T) {
	e := folding.NewEngine()
	fw := example(t, "book")

	st, err := e.State(fw)
	require.NoError(t, err)
	require.Len(t, st.Candidates, 4)
	for _, op := range st.Candidates {
		assert.Equal(t, folding.HingeRotation, op.Kind)
		assert.Equal(t, core.E(0, 1), op.Axis)
		assert.Equal(t, 2, op.EdgeVectorRank)
		assert.Equal(t, 2, op.CoordinateRank)
	}
	assert.True(t, strings.HasPrefix(st.Candidates[0].Description, "rotate {2} about 0-1 by "))

	tr, err := e.Minimize(fw)
	require.NoError(t, err)
	assert.Len(t, tr.Steps, 1)
	assert.Equal(t, "minimal(2)", tr.State.String())
	requireLengthsKept(t, fw, tr.Final, 1e-9)
}

func TestHingeFolds_IncludeNonReducing(t *testing.T) {
	e := folding.NewEngine()
	fw := example(t, "laman4")

	hinges, err := e.HingeFolds(fw)
	require.NoError(t, err)
	assert.NotEmpty(t, hinges)
	for _, op := range hinges {
		assert.True(t, op.LengthPreserving)
		assert.GreaterOrEqual(t, op.EdgeVectorRank, 2)
	}

	cands, err := e.Candidates(fw)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

// tailedBookRows places book with a tail 3-4 out of the plane of 0, 1 and 3.
var tailedBookRows = [][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0}, {0.5, -0.5, 0.7}, {0.5, -0.5, 1.7}}

var tailedBookEdges = []core.Edge{core.E(0, 1), core.E(0, 2), core.E(1, 2), core.E(0, 3), core.E(1, 3), core.E(3, 4)}

func TestHingeFolds_TailBlocksMovingSide(t *testing.T) {
	e := folding.NewEngine()
	fw := spatial(t, 5, tailedBookRows, tailedBookEdges...)

	hinges, err := e.HingeFolds(fw)
	require.NoError(t, err)
	require.NotEmpty(t, hinges)
	for _, op := range hinges {
		assert.Equal(t, []core.VertexID{2}, op.Rotated, op.Description)
		assert.Equal(t, core.E(0, 1), op.Axis)
	}

	ok, err := folding.IsHingeFoldValid(fw.Graph, core.E(0, 1), []core.VertexID{3})
	require.NoError(t, err)
	assert.False(t, ok, "vertex 3 would drag its tail 4")
}

func TestHingeFolds_TailsOnBothSides(t *testing.T) {
	rows := append(append([][]float64(nil), tailedBookRows...), []float64{0.5, 1.5, 0.3})
	fw := spatial(t, 6, rows, append(append([]core.Edge(nil), tailedBookEdges...), core.E(2, 5))...)

	hinges, err := folding.NewEngine().HingeFolds(fw)
	require.NoError(t, err)
	assert.Empty(t, hinges)

	for _, op := range mustCandidates(t, fw) {
		assert.Equal(t, folding.EdgeAlignment, op.Kind, op.Description)
	}
}

func TestEngine_IsolatedVertexWithoutCoordinate(t *testing.T) {
	e := folding.NewEngine()
	// vertex 3 has no edges and no coordinate
	fw := spatial(t, 4, [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, core.E(0, 1), core.E(1, 2))

	st, err := e.State(fw)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Dimension)
	assert.Equal(t, 2, st.CoordinateRank)
	require.NotEmpty(t, st.Candidates)

	r, err := folding.EdgeVectorRank(fw, folding.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	next, err := e.Apply(fw, st.Candidates[0])
	require.NoError(t, err)
	requireLengthsKept(t, fw, next, folding.DefaultLengthTolerance)
	assert.False(t, next.Coords.Has(3))

	tr, err := e.Minimize(fw)
	require.NoError(t, err)
	assert.True(t, tr.State.Minimal)
	assert.Equal(t, 1, tr.State.Dimension)

	// an edge endpoint without a coordinate is still an error
	g, err := core.NewGraph(4, core.E(0, 1), core.E(1, 2), core.E(2, 3))
	require.NoError(t, err)
	_, err = e.State(core.Framework{Graph: g, Coords: fw.Coords})
	assert.ErrorIs(t, err, core.ErrMissingCoordinate)
}

func mustCandidates(t *testing.T, fw core.Framework) []folding.Operation {
	t.Helper()
	cands, err := folding.NewEngine().Candidates(fw)
	require.NoError(t, err)

	return cands
}

func TestHingeFolds_PlanarHasNone(t *testing.T) {
	fw := planar(t, [][]float64{{0, 0}, {1, 0}, {0.5, 0.866}, {0.5, -0.866}},
		core.E(0, 1), core.E(0, 2), core.E(1, 2), core.E(0, 3), core.E(1, 3))
	hinges, err := folding.NewEngine().HingeFolds(fw)
	require.NoError(t, err)
	assert.Empty(t, hinges)
}

func TestFindHinges(t *testing.T) {
	hs, err := folding.FindHinges(example(t, "book").Graph)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, folding.Hinge{
		Axis:   core.E(0, 1),
		Fixed:  []core.VertexID{0, 1, 2},
		Moving: []core.VertexID{3},
	}, hs[0])
	assert.Equal(t, []core.VertexID{2}, hs[1].Moving)

	hs, err = folding.FindHinges(example(t, "tetrahedron").Graph)
	require.NoError(t, err)
	assert.Empty(t, hs)
}

func TestIsHingeFoldValid(t *testing.T) {
	book := example(t, "book").Graph
	ok, err := folding.IsHingeFoldValid(book, core.E(0, 1), []core.VertexID{3})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = folding.IsHingeFoldValid(book, core.E(0, 1), []core.VertexID{0})
	require.NoError(t, err)
	assert.False(t, ok, "axis vertex cannot rotate")

	path := example(t, "path5").Graph
	ok, err = folding.IsHingeFoldValid(path, core.E(1, 2), []core.VertexID{3})
	require.NoError(t, err)
	assert.False(t, ok, "vertex 3 drags its neighbor 4")

	_, err = folding.IsHingeFoldValid(nil, core.E(0, 1), nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestApply_Errors(t *testing.T) {
	e := folding.NewEngine()

	t.Run("length violation", func(t *testing.T) {
		// folding vertex 2 onto 0-1 collapses bar 1-2
		op := folding.Operation{
			Kind: folding.EdgeAlignment, Description: "collapse",
			Pivot: 0, Moving: 2, Reference: 1, Rotated: []core.VertexID{2},
		}
		_, err := e.Apply(example(t, "triangle"), op)
		assert.ErrorIs(t, err, folding.ErrLengthViolation)
	})

	t.Run("rank mismatch", func(t *testing.T) {
		fw := example(t, "path5")
		cands, err := e.Candidates(fw)
		require.NoError(t, err)
		op := cands[0]
		op.EdgeVectorRank = 3
		_, err = e.Apply(fw, op)
		assert.ErrorIs(t, err, folding.ErrRankMismatch)
	})

	t.Run("invalid hinge", func(t *testing.T) {
		op := folding.Operation{
			Kind: folding.HingeRotation, Description: "tear",
			Axis: core.E(1, 2), Angle: 1, Rotated: []core.VertexID{3},
		}
		_, err := e.Apply(example(t, "path5"), op)
		assert.ErrorIs(t, err, folding.ErrInvalidHinge)
	})

	t.Run("planar hinge", func(t *testing.T) {
		fw := planar(t, [][]float64{{0, 0}, {1, 0}, {0.5, 0.866}}, core.E(0, 1), core.E(0, 2), core.E(1, 2))
		op := folding.Operation{
			Kind: folding.HingeRotation, Axis: core.E(0, 1), Angle: 1, Rotated: []core.VertexID{2},
		}
		_, err := e.Apply(fw, op)
		assert.ErrorIs(t, err, folding.ErrNotThreeDimensional)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := e.Apply(example(t, "triangle"), folding.Operation{Kind: folding.Kind(9)})
		assert.ErrorIs(t, err, folding.ErrUnknownKind)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		fw := example(t, "triangle")
		fw.Coords = nil
		_, err := e.Apply(fw, folding.Operation{})
		assert.ErrorIs(t, err, core.ErrMissingCoordinate)
	})
}

func TestApply_OpposedAlignmentHalfTurn(t *testing.T) {
	e := folding.NewEngine()
	fw := spatial(t, 4, [][]float64{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {1, -1, 0}},
		core.E(0, 1), core.E(0, 2), core.E(1, 3))
	op := folding.Operation{
		Kind: folding.EdgeAlignment, Description: "align 0-1 parallel to 0-2",
		Pivot: 0, Moving: 1, Reference: 2, Rotated: []core.VertexID{1, 3},
		EdgeVectorRank: 2, CoordinateRank: 2,
	}

	next, err := e.Apply(fw, op)
	require.NoError(t, err)
	requireLengthsKept(t, fw, next, 1e-12)
	p1, err := next.Coords.Point(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 0}, p1, 1e-12)
	// half turn in the x-y plane
	p3, err := next.Coords.Point(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1, 0}, p3, 1e-12)

	g, err := core.NewGraph(3, core.E(0, 1), core.E(0, 2))
	require.NoError(t, err)
	line, err := core.FromRows(1, [][]float64{{0}, {1}, {-1}})
	require.NoError(t, err)
	_, err = e.Apply(core.Framework{Graph: g, Coords: line}, folding.Operation{
		Kind: folding.EdgeAlignment, Pivot: 0, Moving: 1, Reference: 2, Rotated: []core.VertexID{1},
	})
	assert.ErrorIs(t, err, folding.ErrOpposedDirections)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	e := folding.NewEngine()
	fw := example(t, "path5")
	before := fw.Coords.Clone()

	cands, err := e.Candidates(fw)
	require.NoError(t, err)
	next, err := e.Apply(fw, cands[0])
	require.NoError(t, err)

	assert.True(t, fw.Coords.Equal(before, 0))
	assert.False(t, next.Coords.Equal(before, 1e-6))
	assert.Same(t, fw.Graph, next.Graph)
}

// Every proposal over the example registry applies cleanly and keeps lengths.
func TestRegistry_ProposalsPreserveLengths(t *testing.T) {
	examples, err := builder.Registry()
	require.NoError(t, err)
	e := folding.NewEngine()

	for _, ex := range examples {
		t.Run(ex.Name, func(t *testing.T) {
			fw := ex.Framework
			var ops []folding.Operation
			for _, fn := range []func(core.Framework) ([]folding.Operation, error){
				e.Candidates, e.HingeFolds, e.EdgeAlignmentFolds,
			} {
				got, err := fn(fw)
				require.NoError(t, err)
				ops = append(ops, got...)
			}
			for _, op := range ops {
				assert.LessOrEqual(t, op.MaxLengthError, folding.DefaultLengthTolerance, op.Description)
				next, err := e.Apply(fw, op)
				require.NoError(t, err, op.Description)
				requireLengthsKept(t, fw, next, folding.DefaultLengthTolerance)
			}
		})
	}
}

func TestCandidates_Deduplicated(t *testing.T) {
	examples, err := builder.Registry()
	require.NoError(t, err)
	e := folding.NewEngine()
	for _, ex := range examples {
		cands, err := e.Candidates(ex.Framework)
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, op := range cands {
			k := fmt.Sprintf("%v|%s|%d|%d", op.Kind, op.Description, op.CoordinateRank, op.EdgeVectorRank)
			assert.False(t, seen[k], "%s: duplicate %s", ex.Name, k)
			seen[k] = true
		}
	}
}

func TestEngine_LogsRejectedProposals(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	// both hinge endpoints at the origin
	book := example(t, "book")
	coords, err := book.Coords.With(1, []float64{0, 0, 0})
	require.NoError(t, err)

	hinges, err := folding.NewEngine(folding.WithLogger(logger)).HingeFolds(book.WithCoords(coords))
	require.NoError(t, err)
	assert.Empty(t, hinges)
	assert.Contains(t, buf.String(), "folding: degenerate hinge axis")
	assert.Contains(t, buf.String(), "axis=0-1")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { folding.WithAngles() })
	assert.Panics(t, func() { folding.WithMaxSteps(0) })
	assert.Panics(t, func() { folding.WithLengthTolerance(-1) })
	assert.NotPanics(t, func() { folding.NewEngine(folding.WithLogger(nil)) })
}
