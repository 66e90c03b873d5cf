// SPDX-License-Identifier: MIT

package rigidity

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matrix"
)

// RigidityMatrix is the |E| x d|V| constraint Jacobian of a framework.
//   - Edges[i] is the edge of row i.
//   - Vertices[k] owns columns k*Dim .. k*Dim+Dim-1.
type RigidityMatrix struct {
	Matrix   *matrix.Dense
	Edges    []core.Edge
	Vertices []core.VertexID
	Dim      int
}

// Column returns the column index of component axis of vertex v.
func (r *RigidityMatrix) Column(v core.VertexID, axis int) int {
	return int(v)*r.Dim + axis
}

// TrivialDOF returns d(d+1)/2, the dimension of the rigid motions of R^d.
func TrivialDOF(d int) int { return d * (d + 1) / 2 }

// ExpectedRank returns d*n - TrivialDOF(d), the rank of a generically
// infinitesimally rigid framework on n vertices.
func ExpectedRank(d, n int) int { return d*n - TrivialDOF(d) }

// Build assembles the rigidity matrix of fw in dimension d.
//
// Coordinates longer than d are truncated to their first d components;
// shorter ones read the missing components as 0.
//
// Errors:
//   - core.ErrNilGraph, ErrInvalidDimension;
//   - core.ErrMissingCoordinate when an edge endpoint has no entry.
//
// Complexity: O(|E| * d|V|) for the zero-filled storage, O(|E| * d) fill.
func Build(fw core.Framework, d int, opts ...Option) (*RigidityMatrix, error) {
	o := newOptions(opts...)
	if fw.Graph == nil {
		return nil, rigidityErrorf(opBuild, core.ErrNilGraph)
	}
	if d < 1 {
		return nil, rigidityErrorf(opBuild, fmt.Errorf("d=%d: %w", d, ErrInvalidDimension))
	}
	n := fw.Graph.VertexCount()
	edges := fw.Graph.Edges()

	m, err := matrix.NewDense(len(edges), d*n)
	if err != nil {
		return nil, rigidityErrorf(opBuild, err)
	}
	for i, e := range edges {
		pu, err := point(fw.Coords, e.U, d)
		if err != nil {
			o.logger.Warn("rigidity: edge endpoint without coordinate",
				slogEdge(e), "vertex", int(e.U))
			return nil, rigidityErrorf(opBuild, fmt.Errorf("edge %s: %w", e.Label(), err))
		}
		pv, err := point(fw.Coords, e.V, d)
		if err != nil {
			o.logger.Warn("rigidity: edge endpoint without coordinate",
				slogEdge(e), "vertex", int(e.V))
			return nil, rigidityErrorf(opBuild, fmt.Errorf("edge %s: %w", e.Label(), err))
		}
		for k := 0; k < d; k++ {
			diff := pu[k] - pv[k]
			if err := m.Set(i, int(e.U)*d+k, diff); err != nil {
				return nil, rigidityErrorf(opBuild, err)
			}
			if err := m.Set(i, int(e.V)*d+k, -diff); err != nil {
				return nil, rigidityErrorf(opBuild, err)
			}
		}
	}

	return &RigidityMatrix{Matrix: m, Edges: edges, Vertices: fw.Graph.Vertices(), Dim: d}, nil
}

// point reads v's coordinate projected (or zero-padded) to d components.
func point(c *core.Coordinates, v core.VertexID, d int) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("vertex %d: %w", v, core.ErrMissingCoordinate)
	}
	p, err := c.Point(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d)
	copy(out, p)

	return out, nil
}

// pointOrZero is point for vertices that may legitimately lack a coordinate
// (isolated vertices contribute zero columns).
func pointOrZero(c *core.Coordinates, v core.VertexID, d int) []float64 {
	p, err := point(c, v, d)
	if err != nil {
		return make([]float64, d)
	}

	return p
}
