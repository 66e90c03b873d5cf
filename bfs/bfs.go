// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, plus connected
// components with optional blocked vertices.
//
// The folding engine uses blocked searches to find the side of a linkage that
// swings about a pivot vertex or a hinge axis; the matroid analyzer uses
// Components for its tree test.
package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/linkage/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, or any hook error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, ErrStartVertexNotFound
	}
	if o.Blocked[start] {
		return nil, ErrStartBlocked
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &BFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] || w.opts.Blocked[nbr] {
				continue
			}
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			next := item.depth + 1
			if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
				continue
			}
			w.enqueue(nbr, next, item.id, true)
		}
	}

	return nil
}

// Reachable returns the ascending set of vertices reachable from any of the
// seeds without entering a blocked vertex. Blocked seeds are skipped.
func Reachable(g *core.Graph, seeds []core.VertexID, opts ...Option) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[core.VertexID]bool)
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s, opts...)
		if errors.Is(err, ErrStartBlocked) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
	}
	out := make([]core.VertexID, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Components partitions the non-blocked vertices of g into connected
// components. Each component is sorted; components are ordered by their
// smallest vertex.
func Components(g *core.Graph, opts ...Option) ([][]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	assigned := make(map[core.VertexID]bool, g.VertexCount())
	var comps [][]core.VertexID
	for _, v := range g.Vertices() {
		if assigned[v] || o.Blocked[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		comp := append([]core.VertexID(nil), res.Order...)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		for _, u := range comp {
			assigned[u] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
