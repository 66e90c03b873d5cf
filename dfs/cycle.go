// Package dfs implements cycle detection for undirected core.Graphs.
//
// FindCycle runs a depth-first search with three-color marking and reports
// the first back-edge as a vertex cycle. Since core.Graph is simple (no
// self-loops, no parallel bars) the only trivial back-edge is the tree edge to
// the parent, which is skipped.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (explicit stack + state slice)
package dfs

import (
	"errors"

	"github.com/katalvlaran/linkage/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Visitation colors.
const (
	White = iota // unvisited
	Gray         // on the current DFS path
	Black        // finished
)

type frame struct {
	v      core.VertexID
	parent core.VertexID
	next   int // index of the next neighbor to inspect
}

// FindCycle returns one simple cycle of g as an ordered vertex list, or
// (nil, false) if g is a forest. Roots are tried in ascending id order, so the
// witness is deterministic.
func FindCycle(g *core.Graph) ([]core.VertexID, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	n := g.VertexCount()
	state := make([]int, n)
	adj := make([][]core.VertexID, n)
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(core.VertexID(v))
		if err != nil {
			return nil, false, err
		}
		adj[v] = nbrs
	}

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		stack := []frame{{v: core.VertexID(root), parent: -1}}
		state[root] = Gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(adj[top.v]) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			w := adj[top.v][top.next]
			top.next++
			if w == top.parent {
				continue
			}
			switch state[w] {
			case White:
				state[w] = Gray
				stack = append(stack, frame{v: w, parent: top.v})
			case Gray:
				// back-edge top.v → w: the cycle is the stack suffix starting at w
				var cycle []core.VertexID
				for i := len(stack) - 1; i >= 0; i-- {
					cycle = append(cycle, stack[i].v)
					if stack[i].v == w {
						break
					}
				}
				reverse(cycle)

				return cycle, true, nil
			}
		}
	}

	return nil, false, nil
}

// HasCycle reports whether g contains any cycle.
func HasCycle(g *core.Graph) (bool, error) {
	_, ok, err := FindCycle(g)
	return ok, err
}

func reverse(s []core.VertexID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
