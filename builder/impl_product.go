// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/linkage/core"

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodPrism             = "Prism"

	minPartitionSize = 1
	minGridDim       = 1
	minPrismSides    = 3
)

// CompleteBipartite builds K_{a,b}: the first a vertices form the left side.
func CompleteBipartite(a, c int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "a", a, minPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "b", c, minPartitionSize); err != nil {
			return err
		}
		ids := b.AddVertices(a + c)
		pairs := make([][2]int, 0, a*c)
		for i := 0; i < a; i++ {
			for j := 0; j < c; j++ {
				pairs = append(pairs, [2]int{i, a + j})
			}
		}

		return addEdges(b, methodCompleteBipartite, ids, pairs)
	}
}

// Grid builds the rows×cols 4-neighborhood grid in row-major order
// (vertex r*cols + c). Edges: right neighbor first, then down.
func Grid(rows, cols int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		ids := b.AddVertices(rows * cols)
		var pairs [][2]int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					pairs = append(pairs, [2]int{i, i + 1})
				}
				if r+1 < rows {
					pairs = append(pairs, [2]int{i, i + cols})
				}
			}
		}

		return addEdges(b, methodGrid, ids, pairs)
	}
}

// Prism builds the n-gonal prism (n >= 3): bottom cycle 0..n-1, top cycle
// n..2n-1 and rungs i to n+i.
func Prism(n int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodPrism, "n", n, minPrismSides); err != nil {
			return err
		}
		ids := b.AddVertices(2 * n)
		pairs := make([][2]int, 0, 3*n)
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int{i, (i + 1) % n})
		}
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int{n + i, n + (i+1)%n})
		}
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int{i, n + i})
		}

		return addEdges(b, methodPrism, ids, pairs)
	}
}
