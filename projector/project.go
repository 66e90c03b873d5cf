// SPDX-License-Identifier: MIT

package projector

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkage/core"
)

// minBar is the length below which a bar has no direction to correct along.
const minBar = 1e-12

// Violation is the residual of one constraint after projection.
type Violation struct {
	Constraint core.EdgeConstraint
	// Length is the achieved distance.
	Length float64
	// Error is |Length - Constraint.Length|.
	Error float64
}

// Result is the outcome of Project.
type Result struct {
	Positions  *core.Coordinates
	Violations []Violation
	// Converged holds when TotalViolation <= tolerance·len(constraints).
	Converged      bool
	Iterations     int
	TotalViolation float64
}

// Project relaxes a copy of c toward the constraint lengths.
//
// Behavior highlights:
//   - Gauss-Seidel order: later constraints see earlier corrections of the same sweep.
//   - Bars with both endpoints pinned or of zero length are left untouched.
//   - Iterations counts the sweeps actually run; 0 when c already satisfies the bound.
//
// Errors:
//   - core.ErrMissingCoordinate when a constraint endpoint has no coordinate.
func Project(c *core.Coordinates, constraints []core.EdgeConstraint, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, projectorErrorf("Project", core.ErrMissingCoordinate)
	}
	o := newOptions(opts...)

	pts := make(map[core.VertexID][]float64)
	for _, ec := range constraints {
		for _, v := range [2]core.VertexID{ec.Source, ec.Target} {
			if _, ok := pts[v]; ok {
				continue
			}
			p, err := c.Point(v)
			if err != nil {
				return nil, projectorErrorf("Project", err)
			}
			pts[v] = p
		}
	}

	bound := o.tol * float64(len(constraints))
	total := totalViolation(pts, constraints)
	it := 0
	for ; it < o.iterations && total > bound; it++ {
		sweep(pts, constraints, o.pinned)
		total = totalViolation(pts, constraints)
	}

	out, err := merge(c, pts)
	if err != nil {
		return nil, projectorErrorf("Project", err)
	}

	res := &Result{
		Positions:      out,
		Violations:     violations(pts, constraints),
		Converged:      total <= bound,
		Iterations:     it,
		TotalViolation: total,
	}
	o.logger.Debug("projector: relaxed",
		slog.Int("iterations", it), slog.Float64("total_violation", total), slog.Bool("converged", res.Converged))

	return res, nil
}

// sweep applies one pass of half-corrections in constraint order.
func sweep(pts map[core.VertexID][]float64, constraints []core.EdgeConstraint, pinned map[core.VertexID]bool) {
	for _, ec := range constraints {
		ps, pt := pts[ec.Source], pts[ec.Target]
		fixS, fixT := pinned[ec.Source], pinned[ec.Target]
		if fixS && fixT {
			continue
		}
		d := make([]float64, len(ps))
		floats.SubTo(d, pt, ps)
		l := floats.Norm(d, 2)
		if l < minBar {
			continue
		}
		// d scaled so that moving an endpoint by it removes the whole error
		floats.Scale((l-ec.Length)/l, d)
		switch {
		case fixS:
			floats.AddScaled(pt, -1, d)
		case fixT:
			floats.AddScaled(ps, 1, d)
		default:
			floats.AddScaled(ps, 0.5, d)
			floats.AddScaled(pt, -0.5, d)
		}
	}
}

func totalViolation(pts map[core.VertexID][]float64, constraints []core.EdgeConstraint) float64 {
	total := 0.0
	for _, ec := range constraints {
		total += math.Abs(floats.Distance(pts[ec.Source], pts[ec.Target], 2) - ec.Length)
	}

	return total
}

func violations(pts map[core.VertexID][]float64, constraints []core.EdgeConstraint) []Violation {
	out := make([]Violation, len(constraints))
	for i, ec := range constraints {
		l := floats.Distance(pts[ec.Source], pts[ec.Target], 2)
		out[i] = Violation{Constraint: ec, Length: l, Error: math.Abs(l - ec.Length)}
	}

	return out
}

// Nudge moves every vertex of fw by step·direction/|direction| and projects
// the result back onto the original edge lengths of fw. direction uses the
// rigidity-matrix column layout: vertex v owns entries v·d .. v·d+d-1.
//
// Errors:
//   - ErrDirectionMismatch when len(direction) != d·|V|;
//   - ErrZeroDirection for a zero-norm direction;
//   - core.ErrNilGraph, core.ErrMissingCoordinate from the framework.
func Nudge(fw core.Framework, direction []float64, step float64, opts ...Option) (*Result, error) {
	if err := fw.Validate(); err != nil {
		return nil, projectorErrorf("Nudge", err)
	}
	d, n := fw.Dim(), fw.Graph.VertexCount()
	if len(direction) != d*n {
		return nil, projectorErrorf("Nudge", fmt.Errorf("len %d, want %d·%d: %w", len(direction), d, n, ErrDirectionMismatch))
	}
	norm := floats.Norm(direction, 2)
	if norm < minBar {
		return nil, projectorErrorf("Nudge", ErrZeroDirection)
	}
	constraints, err := fw.EdgeConstraints()
	if err != nil {
		return nil, projectorErrorf("Nudge", err)
	}
	o := newOptions(opts...)

	shifted := make(map[core.VertexID][]float64, n)
	for _, v := range fw.Coords.Vertices() {
		if o.pinned[v] || int(v) >= n {
			continue
		}
		p, err := fw.Coords.Point(v)
		if err != nil {
			return nil, projectorErrorf("Nudge", err)
		}
		floats.AddScaled(p, step/norm, direction[int(v)*d:int(v)*d+d])
		shifted[v] = p
	}
	moved, err := merge(fw.Coords, shifted)
	if err != nil {
		return nil, projectorErrorf("Nudge", err)
	}

	return Project(moved, constraints, opts...)
}

// merge returns a copy of c with the points of over replacing its own.
func merge(c *core.Coordinates, over map[core.VertexID][]float64) (*core.Coordinates, error) {
	all := make(map[core.VertexID][]float64, c.Len())
	for _, v := range c.Vertices() {
		p, err := c.Point(v)
		if err != nil {
			return nil, err
		}
		all[v] = p
	}
	for v, p := range over {
		all[v] = p
	}

	return core.NewCoordinates(c.Dim(), all)
}
