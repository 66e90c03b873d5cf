// SPDX-License-Identifier: MIT

package folding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/folding"
)

func TestRotateAboutAxis(t *testing.T) {
	p, err := folding.RotateAboutAxis(r3.Vec{X: 1}, r3.Vec{}, r3.Vec{Z: 2}, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 0, p.Z, 1e-12)

	// off-origin axis: half turn about the vertical line through (1,1,0)
	p, err = folding.RotateAboutAxis(r3.Vec{X: 2, Y: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Z: 1}, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	// points on the axis stay put
	p, err = folding.RotateAboutAxis(r3.Vec{Z: 5}, r3.Vec{}, r3.Vec{Z: 1}, 1.3)
	require.NoError(t, err)
	assert.InDelta(t, 5, p.Z, 1e-12)
	assert.InDelta(t, 0, r3.Norm(r3.Vec{X: p.X, Y: p.Y}), 1e-12)

	_, err = folding.RotateAboutAxis(r3.Vec{X: 1}, r3.Vec{}, r3.Vec{}, 1)
	assert.ErrorIs(t, err, folding.ErrDegenerateAxis)
}

func TestRotateAboutAxis_PreservesDistance(t *testing.T) {
	origin := r3.Vec{X: 0.3, Y: -1, Z: 2}
	axis := r3.Vec{X: 1, Y: 2, Z: -0.5}
	p := r3.Vec{X: 4, Y: 0.5, Z: -1}
	for _, a := range []float64{0.1, 1, 2.5, -3} {
		q, err := folding.RotateAboutAxis(p, origin, axis, a)
		require.NoError(t, err)
		assert.InDelta(t, r3.Norm(r3.Sub(p, origin)), r3.Norm(r3.Sub(q, origin)), 1e-12)
		// the axial component is unchanged
		k := r3.Unit(axis)
		assert.InDelta(t, r3.Dot(r3.Sub(p, origin), k), r3.Dot(r3.Sub(q, origin), k), 1e-12)
	}
}

func TestRanks(t *testing.T) {
	sq := example(t, "square")
	r, err := folding.CoordinateRank(sq.Coords, folding.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = folding.EdgeVectorRank(sq, folding.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	p5 := example(t, "path5")
	r, err = folding.EdgeVectorRank(p5, folding.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	r, err = folding.CoordinateRank(nil, folding.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Zero(t, r)

	_, err = folding.EdgeVectorRank(core.Framework{}, folding.DefaultRankTolerance)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestVerifyLengths(t *testing.T) {
	tri := example(t, "triangle")
	cons, err := tri.EdgeConstraints()
	require.NoError(t, err)

	worst, ok, err := folding.VerifyLengths(cons, tri.Coords, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, worst)

	moved, err := tri.Coords.With(2, []float64{0.5, 0.87, 0})
	require.NoError(t, err)
	worst, ok, err = folding.VerifyLengths(cons, moved, folding.DefaultLengthTolerance)
	require.NoError(t, err)
	assert.True(t, ok, "drift %g", worst)
	assert.Greater(t, worst, 0.0)

	moved, err = tri.Coords.With(2, []float64{0.5, 2, 0})
	require.NoError(t, err)
	_, ok, err = folding.VerifyLengths(cons, moved, folding.DefaultLengthTolerance)
	require.NoError(t, err)
	assert.False(t, ok)
}
