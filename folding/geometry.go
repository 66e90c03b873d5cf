// SPDX-License-Identifier: MIT

package folding

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matrix"
)

// minDirection is the length below which a direction vector is degenerate.
const minDirection = 1e-12

// RotateAboutAxis rotates p by angle radians about the line through origin
// with direction axis (right-hand rule), by Rodrigues' formula:
//
//	v' = v cos θ + (k × v) sin θ + k (k·v)(1 - cos θ),  v = p - origin.
func RotateAboutAxis(p, origin, axis r3.Vec, angle float64) (r3.Vec, error) {
	n := r3.Norm(axis)
	if n < minDirection {
		return r3.Vec{}, ErrDegenerateAxis
	}
	k := r3.Scale(1/n, axis)
	v := r3.Sub(p, origin)
	cos, sin := math.Cos(angle), math.Sin(angle)
	rot := r3.Add(
		r3.Add(r3.Scale(cos, v), r3.Scale(sin, r3.Cross(k, v))),
		r3.Scale(r3.Dot(k, v)*(1-cos), k),
	)

	return r3.Add(origin, rot), nil
}

func vec(p []float64) r3.Vec { return r3.Vec{X: p[0], Y: p[1], Z: p[2]} }

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		if r != nil {
			out[i] = append([]float64(nil), r...)
		}
	}

	return out
}

// rowDim is the length of the first placed row, 0 when none is placed.
func rowDim(rows [][]float64) int {
	for _, r := range rows {
		if r != nil {
			return len(r)
		}
	}

	return 0
}

// coordinateRank is the rank of the centered coordinate rows; nil rows
// (unplaced vertices) are left out.
func coordinateRank(rows [][]float64, tol float64) (int, error) {
	placed := make([][]float64, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			placed = append(placed, r)
		}
	}
	if len(placed) == 0 {
		return 0, nil
	}
	d := len(placed[0])
	centroid := make([]float64, d)
	for _, r := range placed {
		floats.Add(centroid, r)
	}
	floats.Scale(1/float64(len(placed)), centroid)

	m, err := matrix.NewDense(len(placed), d)
	if err != nil {
		return 0, err
	}
	for i, r := range placed {
		for k := range r {
			if err := m.Set(i, k, r[k]-centroid[k]); err != nil {
				return 0, err
			}
		}
	}

	return matrix.Rank(m, matrix.WithTolerance(tol))
}

// edgeVectorRank is the rank of the matrix whose rows are p_v - p_u.
func edgeVectorRank(g *core.Graph, rows [][]float64, tol float64) (int, error) {
	d := rowDim(rows)
	if g.EdgeCount() == 0 || d == 0 {
		return 0, nil
	}
	m, err := matrix.NewDense(g.EdgeCount(), d)
	if err != nil {
		return 0, err
	}
	for i, e := range g.Edges() {
		for k := 0; k < d; k++ {
			if err := m.Set(i, k, rows[e.V][k]-rows[e.U][k]); err != nil {
				return 0, err
			}
		}
	}

	return matrix.Rank(m, matrix.WithTolerance(tol))
}

// maxLengthError is max |(|p_s - p_t|) - L| over the constraints.
func maxLengthError(rows [][]float64, constraints []core.EdgeConstraint) float64 {
	worst := 0.0
	for _, c := range constraints {
		l := floats.Distance(rows[c.Source], rows[c.Target], 2)
		worst = math.Max(worst, math.Abs(l-c.Length))
	}

	return worst
}

// CoordinateRank returns the rank of the centered coordinates of all placed
// vertices (the affine dimension they span).
func CoordinateRank(c *core.Coordinates, tol float64) (int, error) {
	if c == nil {
		return 0, nil
	}
	vs := c.Vertices()
	rows := make([][]float64, len(vs))
	for i, v := range vs {
		p, err := c.Point(v)
		if err != nil {
			return 0, foldingErrorf("CoordinateRank", err)
		}
		rows[i] = p
	}
	r, err := coordinateRank(rows, tol)
	if err != nil {
		return 0, foldingErrorf("CoordinateRank", err)
	}

	return r, nil
}

// EdgeVectorRank returns the rank of the edge-vector matrix of fw.
func EdgeVectorRank(fw core.Framework, tol float64) (int, error) {
	rows, err := frameworkRows(fw)
	if err != nil {
		return 0, foldingErrorf("EdgeVectorRank", err)
	}
	r, err := edgeVectorRank(fw.Graph, rows, tol)
	if err != nil {
		return 0, foldingErrorf("EdgeVectorRank", err)
	}

	return r, nil
}

// VerifyLengths reports the largest length drift of c against constraints
// and whether it stays within tol (a drift equal to tol passes).
func VerifyLengths(constraints []core.EdgeConstraint, c *core.Coordinates, tol float64) (float64, bool, error) {
	worst := 0.0
	for _, ec := range constraints {
		l, err := c.Distance(ec.Source, ec.Target)
		if err != nil {
			return 0, false, foldingErrorf("VerifyLengths", err)
		}
		worst = math.Max(worst, math.Abs(l-ec.Length))
	}

	return worst, worst <= tol, nil
}

// frameworkRows returns one row per vertex. Every edge endpoint needs a
// coordinate; an unplaced isolated vertex gets a nil row and is treated as
// absent by the ranks and transforms.
func frameworkRows(fw core.Framework) ([][]float64, error) {
	if err := fw.Validate(); err != nil {
		return nil, err
	}
	rows := make([][]float64, fw.Graph.VertexCount())
	for i := range rows {
		v := core.VertexID(i)
		if !fw.Coords.Has(v) {
			continue
		}
		p, err := fw.Coords.Point(v)
		if err != nil {
			return nil, err
		}
		rows[i] = p
	}

	return rows, nil
}
