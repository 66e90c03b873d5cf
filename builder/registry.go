// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

// Example is a named framework fixture.
type Example struct {
	Name        string
	Description string
	Framework   core.Framework
}

type exampleSpec struct {
	name        string
	description string
	cons        []Constructor
	layout      Layout
}

// Shared 3D corner placements.
var (
	triangleRows    = [][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0}}
	tetrahedronRows = [][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0}, {0.5, 0.289, 0.816}}
)

func exampleSpecs() []exampleSpec {
	return []exampleSpec{
		{"triangle", "K3, rigid in the plane", []Constructor{Complete(3)}, ExplicitLayout(triangleRows)},
		{"tetrahedron", "K4, rigid in space", []Constructor{Complete(4)}, ExplicitLayout(tetrahedronRows)},
		{"square", "4-cycle, flexible", []Constructor{Cycle(4)},
			ExplicitLayout([][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})},
		{"laman4", "triangle plus a vertex on two corners (Laman)", []Constructor{Complete(3), attach(3, 1, 2)},
			ExplicitLayout(append(cloneRows(triangleRows), []float64{1.5, 0.866, 0}))},
		{"path5", "bent path on five joints", []Constructor{Path(5)},
			ExplicitLayout([][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {2, 1, 1}})},
		{"star4", "center with three axis leaves", []Constructor{Star(4)},
			ExplicitLayout([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})},
		{"book", "two triangles sharing edge 0-1", []Constructor{Complete(3), attach(3, 0, 1)},
			ExplicitLayout(append(cloneRows(triangleRows), []float64{0.5, -0.5, 0.7}))},
		{"hinged-tetrahedra", "two K4 sharing edge 0-1", []Constructor{Complete(4), attach(4, 0, 1), attach(5, 0, 1, 4)},
			ExplicitLayout(append(cloneRows(tetrahedronRows), []float64{0.5, -0.866, 0}, []float64{0.5, -0.289, 0.816}))},
		{"prism", "triangular prism", []Constructor{Prism(3)},
			ExplicitLayout([][]float64{
				{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0},
				{0, 0, 1}, {1, 0, 1}, {0.5, 0.866, 1},
			})},
		{"octahedron", "octahedron skeleton", []Constructor{PlatonicSolid(Octahedron)}, PlatonicLayout(Octahedron)},
		{"k5", "K5, over-braced in space", []Constructor{Complete(5)},
			ExplicitLayout(append(cloneRows(tetrahedronRows), []float64{0.5, 0.289, -0.6}))},
	}
}

// attach adds vertex v (which must be the next fresh id) joined to targets.
func attach(v core.VertexID, targets ...core.VertexID) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if got := b.AddVertex(); got != v {
			return builderErrorf("attach", fmt.Errorf("fresh vertex %d, want %d: %w", got, v, ErrConstructFailed))
		}
		for _, t := range targets {
			if err := b.AddEdge(v, t); err != nil {
				return builderErrorf("attach", err)
			}
		}

		return nil
	}
}

// Registry builds every registered example in 3D, in a fixed order.
func Registry() ([]Example, error) {
	specs := exampleSpecs()
	out := make([]Example, 0, len(specs))
	for _, s := range specs {
		fw, err := BuildFramework(3, s.layout, nil, s.cons...)
		if err != nil {
			return nil, fmt.Errorf("Registry %s: %w", s.name, err)
		}
		out = append(out, Example{Name: s.name, Description: s.description, Framework: fw})
	}

	return out, nil
}

// Names lists the registered example names in registry order.
func Names() []string {
	specs := exampleSpecs()
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.name
	}

	return out
}

// Lookup builds the example with the given name or returns ErrUnknownExample.
func Lookup(name string) (Example, error) {
	for _, s := range exampleSpecs() {
		if s.name != name {
			continue
		}
		fw, err := BuildFramework(3, s.layout, nil, s.cons...)
		if err != nil {
			return Example{}, fmt.Errorf("Lookup %s: %w", name, err)
		}
		return Example{Name: s.name, Description: s.description, Framework: fw}, nil
	}

	return Example{}, fmt.Errorf("Lookup %q: %w", name, ErrUnknownExample)
}

func cloneRows(rows [][]float64) [][]float64 { return resize(rows, len(rows[0])) }
