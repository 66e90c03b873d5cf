// SPDX-License-Identifier: MIT

package matroid

import (
	"math/bits"

	"github.com/katalvlaran/linkage/core"
)

// forEachSubset calls fn on every k-subset of {0..n-1} as a bitmask, in
// increasing numeric order (Gosper's hack). Iteration stops when fn returns false.
func forEachSubset(n, k int, fn func(mask uint64) bool) {
	if k <= 0 || k > n || n > core.MaxMaskVertices {
		return
	}
	mask := ^uint64(0) >> uint(64-k)
	for mask != 0 && bits.Len64(mask) <= n {
		if !fn(mask) {
			return
		}
		c := mask & -mask
		r := mask + c
		if r == 0 {
			return
		}
		mask = (((r ^ mask) >> 2) / c) | r
	}
}

// inducedCount returns |E(S)| from adjacency masks without allocating.
func inducedCount(adj []uint64, mask uint64) int {
	total := 0
	for m := mask; m != 0; m &= m - 1 {
		v := bits.TrailingZeros64(m)
		total += bits.OnesCount64(adj[v] & mask)
	}

	return total / 2
}

// isClique reports whether every pair in mask is adjacent.
func isClique(adj []uint64, mask uint64) bool {
	for m := mask; m != 0; m &= m - 1 {
		v := bits.TrailingZeros64(m)
		others := mask &^ (1 << uint(v))
		if adj[v]&others != others {
			return false
		}
	}

	return true
}

func adjacency(g *core.Graph) ([]uint64, error) {
	if g == nil {
		return nil, matroidErrorf(opAdjacency, core.ErrNilGraph)
	}
	adj, err := g.AdjacencyMasks()
	if err != nil {
		return nil, matroidErrorf(opAdjacency, err)
	}

	return adj, nil
}
