// SPDX-License-Identifier: MIT

package matroid

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

// LamanResult reports the outcome of CheckLaman.
type LamanResult struct {
	IsLaman bool
	// IsMinimallyRigid2D equals IsLaman (Laman's theorem for generic placements).
	IsMinimallyRigid2D bool
	Reason             string
	// ViolatingSize and ViolatingEdges describe the first over-braced subgraph
	// found (smallest size first); both zero when none was found.
	ViolatingSize     int
	ViolatingEdges    int
	ViolatingVertices []core.VertexID
	// Exhaustive is false when subsets above the cap were not checked.
	Exhaustive bool
}

// LamanThreshold is the largest independent edge count on k vertices in the
// d-dimensional count matroid: d*k - d(d+1)/2, or k(k-1)/2 when k < d+1
// (2k-3 in 2D, 3k-6 in 3D).
func LamanThreshold(k, d int) int {
	if k < d+1 {
		return k * (k - 1) / 2
	}

	return d*k - d*(d+1)/2
}

// CheckLaman tests |E| = 2|V| - 3 and |E(S)| <= 2|S| - 3 for every vertex
// subset S with |S| >= 2 (single vertices carry no edges and are skipped).
//
// Graphs with fewer than 2 vertices are reported as not Laman.
func CheckLaman(g *core.Graph, opts ...Option) (LamanResult, error) {
	o := newOptions(opts...)
	adj, err := adjacency(g)
	if err != nil {
		return LamanResult{}, matroidErrorf(opLaman, err)
	}
	n, e := len(adj), g.EdgeCount()
	top := n
	if n > o.lamanExhaustive {
		top = min(n, o.maxSubset)
	}
	res := LamanResult{Exhaustive: top == n}

	if n < 2 {
		res.Reason = fmt.Sprintf("%d vertices: need at least 2", n)
		return res, nil
	}
	if want := 2*n - 3; e != want {
		res.Reason = fmt.Sprintf("edge count %d != 2*%d-3 = %d", e, n, want)
		return res, nil
	}

	for k := 2; k <= top; k++ {
		limit := 2*k - 3
		var bad uint64
		forEachSubset(n, k, func(mask uint64) bool {
			if inducedCount(adj, mask) > limit {
				bad = mask
				return false
			}
			return true
		})
		if bad != 0 {
			res.ViolatingSize = k
			res.ViolatingEdges = inducedCount(adj, bad)
			res.ViolatingVertices = core.MaskVertices(bad)
			res.Reason = fmt.Sprintf("subgraph on %d vertices has %d edges > 2*%d-3 = %d",
				k, res.ViolatingEdges, k, limit)
			return res, nil
		}
	}

	res.IsLaman = true
	res.IsMinimallyRigid2D = true
	if res.Exhaustive {
		res.Reason = "edge count and every subgraph satisfy the Laman bound"
	} else {
		res.Reason = fmt.Sprintf("edge count and subgraphs up to %d vertices satisfy the Laman bound", top)
	}

	return res, nil
}
