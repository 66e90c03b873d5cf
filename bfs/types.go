// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is outside the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStartBlocked is returned when the start vertex is itself blocked.
	ErrStartBlocked = errors.New("bfs: start vertex is blocked")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.VertexID) bool

	// Blocked vertices are never entered. Used to split a graph at a pivot
	// or along a hinge axis.
	Blocked map[core.VertexID]bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, no filtering,
// no blocked vertices and a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(core.VertexID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
		Blocked:        map[core.VertexID]bool{},
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithBlocked forbids entering the given vertices.
func WithBlocked(ids ...core.VertexID) Option {
	return func(o *BFSOptions) {
		for _, id := range ids {
			o.Blocked[id] = true
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex id to its distance (in edges) from the start.
//   - Parent: map from vertex id to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id core.VertexID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
