// SPDX-License-Identifier: MIT

package folding

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matroid"
)

// FindHinges returns every ordered pair of maximal cliques sharing exactly
// one edge. Each shared edge yields two hinges, one per moving side.
// Fewer than two maximal cliques yield no hinges.
func FindHinges(g *core.Graph) ([]Hinge, error) {
	cliques, err := matroid.MaximalCliques(g)
	if err != nil {
		return nil, foldingErrorf("FindHinges", err)
	}
	var out []Hinge
	for i := range cliques {
		for j := range cliques {
			if i == j {
				continue
			}
			shared := intersect(cliques[i], cliques[j])
			if len(shared) != 2 {
				continue
			}
			axis := core.Edge{U: shared[0], V: shared[1]}
			out = append(out, Hinge{
				Axis:   axis,
				Fixed:  append([]core.VertexID(nil), cliques[i]...),
				Moving: without(cliques[j], axis),
			})
		}
	}

	return out, nil
}

// IsHingeFoldValid reports whether rotating the given vertices about axis
// keeps every incident edge inside the rigid body: no rotated vertex lies on
// the axis and each neighbor of a rotated vertex is on the axis or rotated too.
func IsHingeFoldValid(g *core.Graph, axis core.Edge, rotated []core.VertexID) (bool, error) {
	if g == nil {
		return false, foldingErrorf("IsHingeFoldValid", core.ErrNilGraph)
	}
	in := make(map[core.VertexID]bool, len(rotated))
	for _, v := range rotated {
		in[v] = true
	}
	for _, v := range rotated {
		if axis.Has(v) {
			return false, nil
		}
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return false, foldingErrorf("IsHingeFoldValid", err)
		}
		for _, nb := range nbrs {
			if !axis.Has(nb) && !in[nb] {
				return false, nil
			}
		}
	}

	return true, nil
}

// hingeRows applies a hinge-rotation operation to 3D rows.
func hingeRows(rows [][]float64, op Operation) ([][]float64, error) {
	if rowDim(rows) != 3 {
		return nil, ErrNotThreeDimensional
	}
	origin := vec(rows[op.Axis.U])
	dir := r3.Sub(vec(rows[op.Axis.V]), origin)
	out := cloneRows(rows)
	for _, v := range op.Rotated {
		p, err := RotateAboutAxis(vec(rows[v]), origin, dir, op.Angle)
		if err != nil {
			return nil, err
		}
		out[v] = []float64{p.X, p.Y, p.Z}
	}

	return out, nil
}

// coplanarAngles returns the two rotations that bring the first moving
// vertex into the plane of the axis and the first fixed non-axis vertex.
func coplanarAngles(rows [][]float64, h Hinge) []float64 {
	fixed := without(h.Fixed, h.Axis)
	if len(fixed) == 0 || len(h.Moving) == 0 {
		return nil
	}
	origin := vec(rows[h.Axis.U])
	dir := r3.Sub(vec(rows[h.Axis.V]), origin)
	if r3.Norm(dir) < minDirection {
		return nil
	}
	k := r3.Unit(dir)
	perp := func(v core.VertexID) r3.Vec {
		x := r3.Sub(vec(rows[v]), origin)
		return r3.Sub(x, r3.Scale(r3.Dot(x, k), k))
	}
	rf, rm := perp(fixed[0]), perp(h.Moving[0])
	if r3.Norm(rf) < minDirection || r3.Norm(rm) < minDirection {
		return nil
	}
	theta := math.Atan2(r3.Dot(k, r3.Cross(rm, rf)), r3.Dot(rm, rf))

	return []float64{theta, theta + math.Pi}
}

// hingeProposals enumerates hinge rotations of each moving clique's non-axis
// vertices at every configured and coplanarizing angle. A hinge is dropped
// when its axis has zero length or a moving vertex has a neighbor that is
// neither on the axis nor moving.
func (e *Engine) hingeProposals(s *snapshot) ([]Operation, error) {
	if s.dim != 3 {
		return nil, nil
	}
	g := s.fw.Graph
	hinges, err := FindHinges(g)
	if err != nil {
		return nil, err
	}
	var out []Operation
	for _, h := range hinges {
		if r3.Norm(r3.Sub(vec(s.rows[h.Axis.V]), vec(s.rows[h.Axis.U]))) < minDirection {
			e.opts.logger.Debug("folding: degenerate hinge axis", "axis", h.Axis.Label())
			continue
		}
		rotated := h.Moving
		ok, err := IsHingeFoldValid(g, h.Axis, rotated)
		if err != nil {
			return nil, err
		}
		if !ok {
			e.opts.logger.Debug("folding: invalid hinge", "axis", h.Axis.Label())
			continue
		}
		angles := append(append([]float64(nil), e.opts.angles...), coplanarAngles(s.rows, h)...)
		for _, a := range angles {
			a = normalizeAngle(a)
			if math.Abs(a) < minAngle {
				continue
			}
			out = append(out, Operation{
				Kind:        HingeRotation,
				Description: hingeDescription(rotated, h.Axis, a),
				Axis:        h.Axis,
				Angle:       a,
				Rotated:     rotated,
			})
		}
	}

	return out, nil
}

// minAngle is the rotation below which a hinge proposal is a no-op.
const minAngle = 1e-9

// normalizeAngle maps a to [-π, π].
func normalizeAngle(a float64) float64 { return math.Remainder(a, 2*math.Pi) }

func hingeDescription(rotated []core.VertexID, axis core.Edge, angle float64) string {
	ids := make([]string, len(rotated))
	for i, v := range rotated {
		ids[i] = fmt.Sprint(int(v))
	}

	return fmt.Sprintf("rotate {%s} about %s by %.1f°", strings.Join(ids, ","), axis.Label(), angle*180/math.Pi)
}

func intersect(a, b []core.VertexID) []core.VertexID {
	var out []core.VertexID
	for _, x := range a {
		if contains(b, x) {
			out = append(out, x)
		}
	}

	return out
}

func without(vs []core.VertexID, axis core.Edge) []core.VertexID {
	out := make([]core.VertexID, 0, len(vs))
	for _, v := range vs {
		if !axis.Has(v) {
			out = append(out, v)
		}
	}

	return out
}
