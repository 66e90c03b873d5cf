// SPDX-License-Identifier: MIT

package matroid

import (
	"math/bits"

	"github.com/katalvlaran/linkage/bfs"
	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/dfs"
)

// IsTree reports whether g is connected and acyclic (a single vertex counts).
func IsTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, matroidErrorf(opTree, core.ErrNilGraph)
	}
	if g.VertexCount() == 0 || g.EdgeCount() != g.VertexCount()-1 {
		return false, nil
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return false, matroidErrorf(opTree, err)
	}
	if len(comps) != 1 {
		return false, nil
	}
	cyclic, err := dfs.HasCycle(g)
	if err != nil {
		return false, matroidErrorf(opTree, err)
	}

	return !cyclic, nil
}

// IsPathLike reports whether g is a tree with maximum degree <= 2.
func IsPathLike(g *core.Graph) (bool, error) {
	tree, err := IsTree(g)
	if err != nil || !tree {
		return false, err
	}

	return g.MaxDegree() <= 2, nil
}

// MaxDegree returns the largest vertex degree of g (0 for nil or empty graphs).
func MaxDegree(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return g.MaxDegree()
}

// ComputeMinimalDimension returns a combinatorial lower bound on the
// dimension needed to embed g with its edge lengths:
//   - 1 for path-like trees;
//   - min(maxDegree, max(1, ω-1)) for other trees;
//   - max(1, ω-1) otherwise, where ω is the clique number.
//
// The empty graph needs dimension 0. The bound is heuristic for graphs that
// are neither paths nor complete.
func ComputeMinimalDimension(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, matroidErrorf(opMinDim, core.ErrNilGraph)
	}
	if g.VertexCount() == 0 {
		return 0, nil
	}
	tree, err := IsTree(g)
	if err != nil {
		return 0, matroidErrorf(opMinDim, err)
	}
	if tree && g.MaxDegree() <= 2 {
		return 1, nil
	}
	omega, _, err := CliqueNumber(g, opts...)
	if err != nil {
		return 0, matroidErrorf(opMinDim, err)
	}
	bound := max(1, omega-1)
	if tree {
		return min(g.MaxDegree(), bound), nil
	}

	return bound, nil
}

func popcount(m uint64) int { return bits.OnesCount64(m) }
