// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/linkage/core"

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minCompleteNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
)

// Complete builds K_n (n >= 1). Edges in lexicographic (i,j) order.
func Complete(n int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		ids := b.AddVertices(n)
		var pairs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}

		return addEdges(b, methodComplete, ids, pairs)
	}
}

// Path builds P_n (n >= 2): edges i to i+1.
func Path(n int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		ids := b.AddVertices(n)
		pairs := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			pairs = append(pairs, [2]int{i, i + 1})
		}

		return addEdges(b, methodPath, ids, pairs)
	}
}

// Cycle builds C_n (n >= 3): edges i to (i+1) mod n.
func Cycle(n int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		ids := b.AddVertices(n)
		pairs := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int{i, (i + 1) % n})
		}

		return addEdges(b, methodCycle, ids, pairs)
	}
}

// Star builds a star on n vertices (n >= 2): the first vertex is the center.
func Star(n int) Constructor {
	return func(b *core.GraphBuilder, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		ids := b.AddVertices(n)
		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}

		return addEdges(b, methodStar, ids, pairs)
	}
}

// Wheel builds W_n = C_{n-1} + hub (n >= 4). Rim vertices come first, the hub last.
func Wheel(n int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		first := b.VertexCount()
		if err := Cycle(n-1)(b, cfg); err != nil {
			return builderErrorf(methodWheel, err)
		}
		hub := b.AddVertex()
		for i := 0; i < n-1; i++ {
			if err := b.AddEdge(hub, core.VertexID(first+i)); err != nil {
				return builderErrorf(methodWheel, err)
			}
		}

		return nil
	}
}
