// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph and coordinate operations.
var (
	// ErrUnknownVertex indicates an edge or query referenced a vertex outside 0..n-1.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrSelfLoop indicates an edge (v,v) was supplied.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge on the same unordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNegativeCount indicates a negative vertex count at construction.
	ErrNegativeCount = errors.New("core: negative vertex count")

	// ErrMissingCoordinate indicates a vertex referenced by an edge has no coordinate entry.
	ErrMissingCoordinate = errors.New("core: missing coordinate")

	// ErrDimension indicates a point whose length differs from the snapshot dimension,
	// or a non-positive dimension.
	ErrDimension = errors.New("core: dimension mismatch")

	// ErrNaNInf indicates a non-finite coordinate component.
	ErrNaNInf = errors.New("core: NaN or Inf coordinate")

	// ErrTooManyVertices indicates a bitmask query on a graph with more than MaxMaskVertices vertices.
	ErrTooManyVertices = errors.New("core: too many vertices for bitmask representation")

	// ErrNilGraph indicates a Framework without a Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrTooFewVertices indicates an operation that needs more vertices than the graph has.
	ErrTooFewVertices = errors.New("core: too few vertices")
)

// coreErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func coreErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
