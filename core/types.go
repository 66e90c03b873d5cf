// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// MaxMaskVertices is the largest graph for which uint64 vertex-subset masks are available.
const MaxMaskVertices = 64

// VertexID is an opaque dense vertex index in 0..n-1.
type VertexID int

// Edge is an undirected rigid bar between two distinct vertices.
// A normalized Edge always satisfies U < V; construct via NewEdge or E.
type Edge struct {
	U VertexID
	V VertexID
}

// NewEdge returns the normalized edge {a,b}, or ErrSelfLoop when a == b.
func NewEdge(a, b VertexID) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("NewEdge(%d,%d): %w", a, b, ErrSelfLoop)
	}
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}, nil
}

// E is a literal helper for fixtures: it normalizes (a,b) without validation.
// NewGraph still rejects self-loops built this way.
func E(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: VertexID(a), V: VertexID(b)}
}

// Label returns the stable textual label "u-v" used in circuit reports.
func (e Edge) Label() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v VertexID) bool { return e.U == v || e.V == v }

// Other returns the endpoint opposite to v, and false when v is not on e.
func (e Edge) Other(v VertexID) (VertexID, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// Graph is an immutable simple undirected graph on vertices 0..n-1.
//
// Invariants:
//   - edges sorted by (U,V), no duplicates, no self-loops;
//   - adj[v] sorted ascending;
//   - index maps each edge to its position in edges.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]VertexID
	index map[Edge]int
}

// NewGraph builds a Graph with n vertices and the given edges.
// Edges are normalized and sorted; the input slice is not retained.
//
// Errors:
//   - ErrNegativeCount when n < 0;
//   - ErrUnknownVertex when an endpoint is outside 0..n-1;
//   - ErrSelfLoop, ErrDuplicateEdge.
//
// Complexity: O(n + E log E).
func NewGraph(n int, edges ...Edge) (*Graph, error) {
	if n < 0 {
		return nil, coreErrorf("NewGraph", ErrNegativeCount)
	}
	g := &Graph{
		n:     n,
		edges: make([]Edge, 0, len(edges)),
		adj:   make([][]VertexID, n),
		index: make(map[Edge]int, len(edges)),
	}
	for _, raw := range edges {
		e, err := NewEdge(raw.U, raw.V)
		if err != nil {
			return nil, coreErrorf("NewGraph", err)
		}
		if int(e.U) < 0 || int(e.V) >= n {
			return nil, coreErrorf("NewGraph", fmt.Errorf("edge %s: %w", e.Label(), ErrUnknownVertex))
		}
		if _, dup := g.index[e]; dup {
			return nil, coreErrorf("NewGraph", fmt.Errorf("edge %s: %w", e.Label(), ErrDuplicateEdge))
		}
		g.index[e] = -1
		g.edges = append(g.edges, e)
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})
	for i, e := range g.edges {
		g.index[e] = i
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}
	for v := range g.adj {
		sort.Slice(g.adj[v], func(i, j int) bool { return g.adj[v][i] < g.adj[v][j] })
	}

	return g, nil
}

// GraphBuilder assembles a Graph incrementally. The zero value is ready to use.
// It is not safe for concurrent use; Build returns an independent immutable Graph.
type GraphBuilder struct {
	n     int
	edges []Edge
	seen  map[Edge]struct{}
}

// NewGraphBuilder returns an empty builder.
func NewGraphBuilder() *GraphBuilder { return &GraphBuilder{} }

// AddVertex appends a fresh vertex and returns its id.
func (b *GraphBuilder) AddVertex() VertexID {
	id := VertexID(b.n)
	b.n++

	return id
}

// AddVertices appends k fresh vertices and returns their ids in order.
func (b *GraphBuilder) AddVertices(k int) []VertexID {
	ids := make([]VertexID, 0, k)
	for i := 0; i < k; i++ {
		ids = append(ids, b.AddVertex())
	}

	return ids
}

// AddEdge records the bar {u,v}.
func (b *GraphBuilder) AddEdge(u, v VertexID) error {
	e, err := NewEdge(u, v)
	if err != nil {
		return err
	}
	if int(e.U) < 0 || int(e.V) >= b.n {
		return fmt.Errorf("AddEdge %s: %w", e.Label(), ErrUnknownVertex)
	}
	if b.seen == nil {
		b.seen = make(map[Edge]struct{})
	}
	if _, dup := b.seen[e]; dup {
		return fmt.Errorf("AddEdge %s: %w", e.Label(), ErrDuplicateEdge)
	}
	b.seen[e] = struct{}{}
	b.edges = append(b.edges, e)

	return nil
}

// HasEdge reports whether {u,v} was already recorded.
func (b *GraphBuilder) HasEdge(u, v VertexID) bool {
	e, err := NewEdge(u, v)
	if err != nil {
		return false
	}
	_, ok := b.seen[e]

	return ok
}

// VertexCount returns the number of vertices added so far.
func (b *GraphBuilder) VertexCount() int { return b.n }

// Build returns the immutable Graph. The builder may keep being used.
func (b *GraphBuilder) Build() (*Graph, error) {
	return NewGraph(b.n, b.edges...)
}
