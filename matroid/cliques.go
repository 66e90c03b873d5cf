// SPDX-License-Identifier: MIT

package matroid

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/linkage/core"
)

// CliqueNumber returns the size of the largest complete subgraph of g.
//
// For |V| <= the exact limit it enumerates subsets from the largest size
// downward and stops at the first size holding a clique (exact = true).
// Above the limit it grows a clique greedily from every seed vertex, always
// adding the candidate with the most neighbors among the remaining
// candidates; the result is a lower bound (exact = false).
//
// An empty graph has clique number 0; any vertex alone is a clique of size 1.
func CliqueNumber(g *core.Graph, opts ...Option) (size int, exact bool, err error) {
	o := newOptions(opts...)
	adj, err := adjacency(g)
	if err != nil {
		return 0, false, matroidErrorf(opClique, err)
	}
	n := len(adj)
	if n <= o.exactCliqueLimit {
		return exactCliqueNumber(adj), true, nil
	}

	return greedyCliqueNumber(adj), false, nil
}

func exactCliqueNumber(adj []uint64) int {
	n := len(adj)
	for k := n; k >= 2; k-- {
		found := false
		forEachSubset(n, k, func(mask uint64) bool {
			found = isClique(adj, mask)
			return !found
		})
		if found {
			return k
		}
	}

	return min(n, 1)
}

func greedyCliqueNumber(adj []uint64) int {
	best := min(len(adj), 1)
	for seed := range adj {
		size := 1
		cand := adj[seed]
		for cand != 0 {
			pick, pickDeg := -1, -1
			for m := cand; m != 0; m &= m - 1 {
				v := bits.TrailingZeros64(m)
				if d := bits.OnesCount64(adj[v] & cand); d > pickDeg {
					pick, pickDeg = v, d
				}
			}
			size++
			cand &= adj[pick]
		}
		best = max(best, size)
	}

	return best
}

// MaximalCliques lists every maximal clique of g with at least MinCliqueSize
// vertices, found by Bron–Kerbosch with pivoting.
//
// Ordering: size descending, then lexicographic by vertex ids, so the first
// entry is a maximum clique whenever the clique number is >= 3.
func MaximalCliques(g *core.Graph) ([][]core.VertexID, error) {
	adj, err := adjacency(g)
	if err != nil {
		return nil, matroidErrorf(opMaximal, err)
	}
	var all uint64
	if n := len(adj); n > 0 {
		all = ^uint64(0) >> uint(64-n)
	}
	bk := bronKerbosch{adj: adj}
	bk.expand(0, all, 0)

	out := make([][]core.VertexID, len(bk.found))
	for i, m := range bk.found {
		out[i] = core.MaskVertices(m)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return lessIDs(out[i], out[j])
	})

	return out, nil
}

type bronKerbosch struct {
	adj   []uint64
	found []uint64
}

// expand reports r when it cannot be extended (p and x empty). The pivot is
// the vertex of p|x with the most neighbors in p; only non-neighbors of the
// pivot are branched on.
func (b *bronKerbosch) expand(r, p, x uint64) {
	if p == 0 {
		if x == 0 && bits.OnesCount64(r) >= MinCliqueSize {
			b.found = append(b.found, r)
		}
		return
	}
	pivot, best := 0, -1
	for m := p | x; m != 0; m &= m - 1 {
		u := bits.TrailingZeros64(m)
		if c := bits.OnesCount64(p & b.adj[u]); c > best {
			pivot, best = u, c
		}
	}
	for cand := p &^ b.adj[pivot]; cand != 0; cand &= cand - 1 {
		v := bits.TrailingZeros64(cand)
		bit := uint64(1) << uint(v)
		b.expand(r|bit, p&b.adj[v], x&b.adj[v])
		p &^= bit
		x |= bit
	}
}

func lessIDs(a, b []core.VertexID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
