// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math/bits"
)

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns 0..n-1 as a fresh slice.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, g.n)
	for i := range out {
		out[i] = VertexID(i)
	}

	return out
}

// Contains reports whether v is in 0..n-1.
func (g *Graph) Contains(v VertexID) bool { return v >= 0 && int(v) < g.n }

// Edges returns all edges sorted by (U,V). The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeAt returns the i-th edge in sorted order.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// EdgeIndex returns the sorted position of {u,v}, or false when absent.
func (g *Graph) EdgeIndex(u, v VertexID) (int, bool) {
	e, err := NewEdge(u, v)
	if err != nil {
		return 0, false
	}
	i, ok := g.index[e]

	return i, ok
}

// HasEdge reports whether {u,v} is a bar of g.
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.EdgeIndex(u, v)
	return ok
}

// Neighbors returns the sorted neighbor ids of v (a copy).
func (g *Graph) Neighbors(v VertexID) ([]VertexID, error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrUnknownVertex)
	}
	out := make([]VertexID, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of bars incident to v; 0 for unknown vertices.
func (g *Graph) Degree(v VertexID) int {
	if !g.Contains(v) {
		return 0
	}

	return len(g.adj[v])
}

// MaxDegree returns the largest vertex degree (0 for an edgeless graph).
func (g *Graph) MaxDegree() int {
	best := 0
	for v := range g.adj {
		if d := len(g.adj[v]); d > best {
			best = d
		}
	}

	return best
}

// AdjacencyMasks returns, for each vertex v, the bitmask of its neighbors.
// Returns ErrTooManyVertices when n > MaxMaskVertices.
func (g *Graph) AdjacencyMasks() ([]uint64, error) {
	if g.n > MaxMaskVertices {
		return nil, coreErrorf("AdjacencyMasks", ErrTooManyVertices)
	}
	masks := make([]uint64, g.n)
	for _, e := range g.edges {
		masks[e.U] |= 1 << uint(e.V)
		masks[e.V] |= 1 << uint(e.U)
	}

	return masks, nil
}

// InducedEdges returns the edges with both endpoints in mask, in sorted order.
// Vertices above MaxMaskVertices are never part of a mask.
func (g *Graph) InducedEdges(mask uint64) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if inMask(mask, e.U) && inMask(mask, e.V) {
			out = append(out, e)
		}
	}

	return out
}

// InducedEdgeCount returns |E(S)| for the vertex subset S encoded by mask.
func (g *Graph) InducedEdgeCount(mask uint64) int {
	count := 0
	for _, e := range g.edges {
		if inMask(mask, e.U) && inMask(mask, e.V) {
			count++
		}
	}

	return count
}

// MaskVertices decodes mask into ascending vertex ids.
func MaskVertices(mask uint64) []VertexID {
	out := make([]VertexID, 0, bits.OnesCount64(mask))
	for mask != 0 {
		v := bits.TrailingZeros64(mask)
		out = append(out, VertexID(v))
		mask &= mask - 1
	}

	return out
}

// VerticesMask encodes vertex ids as a bitmask; ids outside 0..63 are ignored.
func VerticesMask(vs []VertexID) uint64 {
	var mask uint64
	for _, v := range vs {
		if v >= 0 && v < MaxMaskVertices {
			mask |= 1 << uint(v)
		}
	}

	return mask
}

func inMask(mask uint64, v VertexID) bool {
	return v >= 0 && v < MaxMaskVertices && mask&(1<<uint(v)) != 0
}
