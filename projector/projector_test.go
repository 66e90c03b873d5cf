// SPDX-License-Identifier: MIT

package projector_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkage/builder"
	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/projector"
	"github.com/katalvlaran/linkage/rigidity"
)

func coords(t *testing.T, rows ...[]float64) *core.Coordinates {
	t.Helper()
	c, err := core.FromRows(len(rows[0]), rows)
	require.NoError(t, err)

	return c
}

func point(t *testing.T, c *core.Coordinates, v core.VertexID) []float64 {
	t.Helper()
	p, err := c.Point(v)
	require.NoError(t, err)

	return p
}

var unitTriangle = []core.EdgeConstraint{
	{Source: 0, Target: 1, Length: 1},
	{Source: 0, Target: 2, Length: 1},
	{Source: 1, Target: 2, Length: 1},
}

func TestProject_AlreadySatisfied(t *testing.T) {
	c := coords(t, []float64{0, 0}, []float64{1, 0}, []float64{0.5, 0.8660254037844386})
	res, err := projector.Project(c, unitTriangle)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
	assert.True(t, res.Positions.Equal(c, 0))
	assert.NotSame(t, c, res.Positions)
}

func TestProject_HalfCorrection(t *testing.T) {
	c := coords(t, []float64{0, 0}, []float64{2, 0})
	bar := []core.EdgeConstraint{{Source: 0, Target: 1, Length: 1}}

	res, err := projector.Project(c, bar)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{0.5, 0}, point(t, res.Positions, 0), 1e-12)
	assert.InDeltaSlice(t, []float64{1.5, 0}, point(t, res.Positions, 1), 1e-12)
	require.Len(t, res.Violations, 1)
	assert.InDelta(t, 1, res.Violations[0].Length, 1e-12)
	assert.InDelta(t, 0, res.Violations[0].Error, 1e-12)

	// input untouched
	assert.Equal(t, []float64{2, 0}, point(t, c, 1))
}

func TestProject_Pinned(t *testing.T) {
	c := coords(t, []float64{0, 0}, []float64{2, 0})
	bar := []core.EdgeConstraint{{Source: 0, Target: 1, Length: 1}}

	res, err := projector.Project(c, bar, projector.WithPinned(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, point(t, res.Positions, 0))
	assert.InDeltaSlice(t, []float64{1, 0}, point(t, res.Positions, 1), 1e-12)

	res, err = projector.Project(c, bar, projector.WithPinned(0), projector.WithPinned(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, projector.DefaultIterations, res.Iterations)
	assert.InDelta(t, 1, res.TotalViolation, 1e-12)
}

func TestProject_RelaxesPerturbedTriangle(t *testing.T) {
	c := coords(t, []float64{0, 0}, []float64{1.3, 0}, []float64{0.5, 1.2})

	res, err := projector.Project(c, unitTriangle)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.LessOrEqual(t, res.TotalViolation, 3*projector.DefaultTolerance)

	res, err = projector.Project(c, unitTriangle, projector.WithIterations(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)

	res, err = projector.Project(c, unitTriangle, projector.WithIterations(50), projector.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	for _, v := range res.Violations {
		assert.LessOrEqual(t, v.Error, 3e-6)
	}
}

func TestProject_Errors(t *testing.T) {
	_, err := projector.Project(nil, unitTriangle)
	assert.ErrorIs(t, err, core.ErrMissingCoordinate)

	_, err = projector.Project(coords(t, []float64{0, 0}, []float64{1, 0}), unitTriangle)
	assert.ErrorIs(t, err, core.ErrMissingCoordinate)
}

func TestProject_NoConstraints(t *testing.T) {
	res, err := projector.Project(coords(t, []float64{0, 0}), nil)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Empty(t, res.Violations)
}

func TestNudge_AlongFlex(t *testing.T) {
	ex, err := builder.Lookup("square")
	require.NoError(t, err)
	sq := ex.Framework

	motions, err := rigidity.NonTrivialMotions(sq, 3)
	require.NoError(t, err)
	require.NotEmpty(t, motions)

	res, err := projector.Nudge(sq, motions[0], 0.1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.TotalViolation, 4*projector.DefaultTolerance)
	assert.False(t, res.Positions.Equal(sq.Coords, 1e-3), "the square must have moved")
}

func TestNudge_PinnedStayPut(t *testing.T) {
	ex, err := builder.Lookup("square")
	require.NoError(t, err)
	sq := ex.Framework

	// shear the top edge sideways
	dir := []float64{0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0}
	res, err := projector.Nudge(sq, dir, 0.2, projector.WithPinned(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, point(t, res.Positions, 0))
	assert.Equal(t, []float64{1, 0, 0}, point(t, res.Positions, 1))
	assert.Greater(t, point(t, res.Positions, 2)[0], 1.0)
}

func TestNudge_Errors(t *testing.T) {
	ex, err := builder.Lookup("triangle")
	require.NoError(t, err)

	_, err = projector.Nudge(ex.Framework, make([]float64, 9), 1)
	assert.ErrorIs(t, err, projector.ErrZeroDirection)

	_, err = projector.Nudge(ex.Framework, []float64{1, 0}, 1)
	assert.ErrorIs(t, err, projector.ErrDirectionMismatch)

	_, err = projector.Nudge(core.Framework{}, nil, 1)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestProject_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := coords(t, []float64{0, 0}, []float64{2, 0})
	_, err := projector.Project(c, []core.EdgeConstraint{{Source: 0, Target: 1, Length: 1}}, projector.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "converged=true")
	assert.Contains(t, buf.String(), "iterations=1")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { projector.WithIterations(0) })
	assert.Panics(t, func() { projector.WithTolerance(-0.1) })
}
