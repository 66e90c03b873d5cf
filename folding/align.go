// SPDX-License-Identifier: MIT

package folding

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkage/bfs"
	"github.com/katalvlaran/linkage/core"
)

// alignedCos is the cosine above which two directions count as already aligned.
const alignedCos = 1 - 1e-9

// alignRows applies an edge-alignment operation to rows.
func alignRows(rows [][]float64, op Operation) ([][]float64, error) {
	pa := rows[op.Pivot]
	u := make([]float64, len(pa))
	w := make([]float64, len(pa))
	floats.SubTo(u, rows[op.Moving], pa)
	floats.SubTo(w, rows[op.Reference], pa)
	nu, nw := floats.Norm(u, 2), floats.Norm(w, 2)
	if nu < minDirection || nw < minDirection {
		return nil, ErrDegenerateEdge
	}
	floats.Scale(1/nu, u)
	floats.Scale(1/nw, w)
	if op.AntiParallel {
		floats.Scale(-1, w)
	}
	c := floats.Dot(u, w)
	if 1+c < 1-alignedCos {
		return halfTurnRows(rows, op, u)
	}
	s := make([]float64, len(pa))
	floats.AddTo(s, u, w)

	out := cloneRows(rows)
	x := make([]float64, len(pa))
	for _, v := range op.Rotated {
		floats.SubTo(x, rows[v], pa)
		coef := floats.Dot(s, x) / (1 + c)
		ux := floats.Dot(u, x)
		floats.AddScaled(x, -coef, s)
		floats.AddScaled(x, 2*ux, w)
		floats.AddTo(out[v], pa, x)
	}

	return out, nil
}

// halfTurnRows rotates op.Rotated by 180 degrees about the pivot in the plane
// of u and the direction p perpendicular to u built from the basis vector u
// is least aligned with: x' = x - 2(u·x)u - 2(p·x)p. It maps u onto -u.
// A line has no such plane, so 1D frameworks yield ErrOpposedDirections.
func halfTurnRows(rows [][]float64, op Operation, u []float64) ([][]float64, error) {
	d := len(u)
	if d < 2 {
		return nil, ErrOpposedDirections
	}
	k := 0
	for i := 1; i < d; i++ {
		if math.Abs(u[i]) < math.Abs(u[k]) {
			k = i
		}
	}
	p := make([]float64, d)
	p[k] = 1
	floats.AddScaled(p, -u[k], u)
	floats.Scale(1/floats.Norm(p, 2), p)

	pa := rows[op.Pivot]
	out := cloneRows(rows)
	x := make([]float64, d)
	for _, v := range op.Rotated {
		floats.SubTo(x, rows[v], pa)
		ux, px := floats.Dot(u, x), floats.Dot(p, x)
		floats.AddScaled(x, -2*ux, u)
		floats.AddScaled(x, -2*px, p)
		floats.AddTo(out[v], pa, x)
	}

	return out, nil
}

func alignDescription(pivot, moving, ref core.VertexID, anti bool) string {
	rel := "parallel to"
	if anti {
		rel = "anti-parallel to"
	}

	return fmt.Sprintf("align %d-%d %s %d-%d", pivot, moving, rel, pivot, ref)
}

// alignmentProposals enumerates (pivot, reference, moving, sign) tuples whose
// rotated component does not contain the reference vertex and whose edges
// are not already aligned.
func alignmentProposals(s *snapshot) ([]Operation, error) {
	g := s.fw.Graph
	var out []Operation
	for _, a := range g.Vertices() {
		nbrs, err := g.Neighbors(a)
		if err != nil {
			return nil, err
		}
		for _, c := range nbrs {
			rotated, err := bfs.Reachable(g, []core.VertexID{c}, bfs.WithBlocked(a))
			if err != nil {
				return nil, err
			}
			for _, b := range nbrs {
				if b == c || contains(rotated, b) {
					continue
				}
				for _, anti := range [2]bool{false, true} {
					if s.aligned(a, c, b, anti) {
						continue
					}
					out = append(out, Operation{
						Kind:         EdgeAlignment,
						Description:  alignDescription(a, c, b, anti),
						Pivot:        a,
						Moving:       c,
						Reference:    b,
						AntiParallel: anti,
						Rotated:      rotated,
					})
				}
			}
		}
	}

	return out, nil
}

func contains(sorted []core.VertexID, v core.VertexID) bool {
	for _, x := range sorted {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}

	return false
}
