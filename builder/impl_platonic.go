// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName selects a solid for PlatonicSolid.
type PlatonicName string

// Supported solids.
const (
	Tetrahedron PlatonicName = "tetrahedron"
	Cube        PlatonicName = "cube"
	Octahedron  PlatonicName = "octahedron"
)

type platonicShape struct {
	vertices int
	edges    [][2]int
	// points is the canonical embedding with vertex i at points[i].
	points [][]float64
}

var platonicShapes = map[PlatonicName]platonicShape{
	Tetrahedron: {
		vertices: 4,
		edges:    [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		points:   [][]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
	},
	Cube: {
		vertices: 8,
		edges: [][2]int{
			{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
			{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
		},
		points: [][]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		},
	},
	Octahedron: {
		vertices: 6,
		// every pair except the antipodal ones (0,1), (2,3), (4,5)
		edges: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3},
			{1, 4}, {1, 5}, {2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
		points: [][]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
	},
}

// PlatonicSolid builds the edge skeleton of the named solid.
// Unknown names yield ErrOptionViolation.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		shape, ok := platonicShapes[name]
		if !ok {
			return builderErrorf(methodPlatonicSolid, fmt.Errorf("unknown solid %q: %w", name, ErrOptionViolation))
		}
		ids := b.AddVertices(shape.vertices)

		return addEdges(b, methodPlatonicSolid, ids, shape.edges)
	}
}

// PlatonicLayout places a single PlatonicSolid(name) at its canonical
// 3D coordinates (zero-padded or truncated to dim).
func PlatonicLayout(name PlatonicName) Layout {
	return func(n, dim int, _ builderConfig) ([][]float64, error) {
		shape, ok := platonicShapes[name]
		if !ok {
			return nil, builderErrorf("PlatonicLayout", fmt.Errorf("unknown solid %q: %w", name, ErrOptionViolation))
		}
		if n != shape.vertices {
			return nil, builderErrorf("PlatonicLayout", fmt.Errorf("n=%d, solid has %d: %w", n, shape.vertices, ErrLayoutMismatch))
		}

		return resize(shape.points, dim), nil
	}
}
