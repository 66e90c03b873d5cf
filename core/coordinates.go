// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Coordinates is an immutable snapshot assigning a point in R^d to vertices.
// Vertices without an entry are "missing"; they are never zero-filled.
type Coordinates struct {
	dim int
	pts map[VertexID][]float64
}

// NewCoordinates validates and copies pts into a snapshot of dimension dim.
//
// Errors:
//   - ErrDimension when dim <= 0 or a point has length != dim;
//   - ErrNaNInf for non-finite components.
func NewCoordinates(dim int, pts map[VertexID][]float64) (*Coordinates, error) {
	if dim <= 0 {
		return nil, coreErrorf("NewCoordinates", ErrDimension)
	}
	c := &Coordinates{dim: dim, pts: make(map[VertexID][]float64, len(pts))}
	for v, p := range pts {
		if err := checkPoint(dim, p); err != nil {
			return nil, coreErrorf("NewCoordinates", fmt.Errorf("vertex %d: %w", v, err))
		}
		c.pts[v] = clonePoint(p)
	}

	return c, nil
}

// FromRows builds a snapshot where rows[i] is the point of vertex i.
// The dimension is taken from the first row; an empty rows slice needs dim > 0.
func FromRows(dim int, rows [][]float64) (*Coordinates, error) {
	pts := make(map[VertexID][]float64, len(rows))
	for i, r := range rows {
		pts[VertexID(i)] = r
	}

	return NewCoordinates(dim, pts)
}

func checkPoint(dim int, p []float64) error {
	if len(p) != dim {
		return fmt.Errorf("len %d != %d: %w", len(p), dim, ErrDimension)
	}
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

func clonePoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)

	return out
}

// Dim returns the point length d.
func (c *Coordinates) Dim() int { return c.dim }

// Len returns the number of vertices with an entry.
func (c *Coordinates) Len() int { return len(c.pts) }

// Has reports whether v has an entry.
func (c *Coordinates) Has(v VertexID) bool {
	_, ok := c.pts[v]
	return ok
}

// Point returns a copy of v's point, or ErrMissingCoordinate.
func (c *Coordinates) Point(v VertexID) ([]float64, error) {
	p, ok := c.pts[v]
	if !ok {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrMissingCoordinate)
	}

	return clonePoint(p), nil
}

// Vertices returns the ids with an entry, ascending.
func (c *Coordinates) Vertices() []VertexID {
	out := make([]VertexID, 0, len(c.pts))
	for v := range c.pts {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Rows returns the points of vertices 0..n-1 as fresh rows.
// Any missing vertex yields ErrMissingCoordinate.
func (c *Coordinates) Rows(n int) ([][]float64, error) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		p, ok := c.pts[VertexID(i)]
		if !ok {
			return nil, coreErrorf("Rows", fmt.Errorf("vertex %d: %w", i, ErrMissingCoordinate))
		}
		rows[i] = clonePoint(p)
	}

	return rows, nil
}

// With returns a new snapshot in which v is placed at p.
func (c *Coordinates) With(v VertexID, p []float64) (*Coordinates, error) {
	if err := checkPoint(c.dim, p); err != nil {
		return nil, coreErrorf("With", err)
	}
	next := c.Clone()
	next.pts[v] = clonePoint(p)

	return next, nil
}

// WithRows returns a new snapshot where vertex i moves to rows[i].
// Entries for vertices >= len(rows) and nil rows are carried over unchanged.
func (c *Coordinates) WithRows(rows [][]float64) (*Coordinates, error) {
	next := c.Clone()
	for i, r := range rows {
		if r == nil {
			continue
		}
		if err := checkPoint(c.dim, r); err != nil {
			return nil, coreErrorf("WithRows", fmt.Errorf("vertex %d: %w", i, err))
		}
		next.pts[VertexID(i)] = clonePoint(r)
	}

	return next, nil
}

// Clone returns a deep copy.
func (c *Coordinates) Clone() *Coordinates {
	next := &Coordinates{dim: c.dim, pts: make(map[VertexID][]float64, len(c.pts))}
	for v, p := range c.pts {
		next.pts[v] = clonePoint(p)
	}

	return next
}

// Resize returns a copy with every point truncated or zero-padded to dim.
func (c *Coordinates) Resize(dim int) (*Coordinates, error) {
	if dim <= 0 {
		return nil, coreErrorf("Resize", ErrDimension)
	}
	next := &Coordinates{dim: dim, pts: make(map[VertexID][]float64, len(c.pts))}
	for v, p := range c.pts {
		q := make([]float64, dim)
		copy(q, p)
		next.pts[v] = q
	}

	return next, nil
}

// Distance returns the Euclidean distance |p_u - p_v|.
func (c *Coordinates) Distance(u, v VertexID) (float64, error) {
	pu, ok := c.pts[u]
	if !ok {
		return 0, fmt.Errorf("Distance: vertex %d: %w", u, ErrMissingCoordinate)
	}
	pv, ok := c.pts[v]
	if !ok {
		return 0, fmt.Errorf("Distance: vertex %d: %w", v, ErrMissingCoordinate)
	}

	return floats.Distance(pu, pv, 2), nil
}

// Equal reports whether both snapshots hold the same vertices at points
// agreeing within tol in every component.
func (c *Coordinates) Equal(other *Coordinates, tol float64) bool {
	if other == nil || c.dim != other.dim || len(c.pts) != len(other.pts) {
		return false
	}
	for v, p := range c.pts {
		q, ok := other.pts[v]
		if !ok || !floats.EqualApprox(p, q, tol) {
			return false
		}
	}

	return true
}
