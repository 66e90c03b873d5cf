// SPDX-License-Identifier: MIT

package core

import "fmt"

// Attributes is a typed side-table of human-facing vertex names keyed by id.
// It is copy-on-write: WithName returns a new table and leaves the receiver intact.
// The zero value is an empty table.
type Attributes struct {
	names map[VertexID]string
}

// WithName returns a copy of a with v named name.
func (a Attributes) WithName(v VertexID, name string) Attributes {
	next := make(map[VertexID]string, len(a.names)+1)
	for k, s := range a.names {
		next[k] = s
	}
	next[v] = name

	return Attributes{names: next}
}

// Name returns the name of v, falling back to its decimal id.
func (a Attributes) Name(v VertexID) string {
	if s, ok := a.names[v]; ok {
		return s
	}

	return fmt.Sprintf("%d", v)
}

// Len returns the number of named vertices.
func (a Attributes) Len() int { return len(a.names) }
