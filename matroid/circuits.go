// SPDX-License-Identifier: MIT

package matroid

import (
	"github.com/katalvlaran/linkage/core"
)

// FindCircuits lists the over-braced induced subgraphs of g in the
// d-dimensional count matroid, one edge-label set ("u-v") per circuit.
//
// A vertex subset S of size 3..min(|V|, cap) qualifies when:
//   - |E(S)| == LamanThreshold(|S|, d) + 1, so removing any single edge of
//     E(S) brings the count back to the threshold;
//   - every proper subset S' of S with |S'| >= 2 satisfies
//     |E(S')| <= LamanThreshold(|S'|, d), so no smaller dependency hides inside.
//
// Circuits are ordered by subset size and then by vertex mask; labels follow
// the graph edge order.
func FindCircuits(g *core.Graph, d int, opts ...Option) ([][]string, error) {
	o := newOptions(opts...)
	adj, err := adjacency(g)
	if err != nil {
		return nil, matroidErrorf(opCircuits, err)
	}
	if d < 1 {
		d = DefaultCircuitDimension
	}
	n := len(adj)
	out := [][]string{}
	for k := 3; k <= min(n, o.maxCircuit); k++ {
		target := LamanThreshold(k, d) + 1
		forEachSubset(n, k, func(mask uint64) bool {
			if inducedCount(adj, mask) == target && independentBelow(adj, mask, d) {
				out = append(out, labels(g.InducedEdges(mask)))
			}
			return true
		})
	}

	return out, nil
}

// independentBelow checks the count bound on every proper sub-mask of mask
// with at least two vertices.
func independentBelow(adj []uint64, mask uint64, d int) bool {
	for sub := (mask - 1) & mask; sub != 0; sub = (sub - 1) & mask {
		k := popcount(sub)
		if k < 2 {
			continue
		}
		if inducedCount(adj, sub) > LamanThreshold(k, d) {
			return false
		}
	}

	return true
}

func labels(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Label()
	}

	return out
}
