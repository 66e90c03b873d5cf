// SPDX-License-Identifier: MIT

// Package core defines the value types every analysis in linkage consumes:
// an immutable simple Graph over integer vertex ids, a Coordinates snapshot
// assigning a fixed-length real vector to each vertex, and the Framework that
// pairs the two.
//
// What
//
//   - VertexID is an opaque dense index (0..n-1), Edge is a normalized
//     unordered pair (U < V). Self-loops and parallel edges are rejected.
//   - Graph is immutable after construction. Use NewGraph for literal edge
//     lists and GraphBuilder for incremental assembly.
//   - Attributes is a typed side-table (vertex names) kept apart from the
//     structure, so that derived data never aliases the Graph.
//   - Coordinates never mutates in place: With/WithRows return new snapshots;
//     callers keep prior snapshots for undo/redo.
//   - Framework.Fingerprint hashes structure and coordinates (xxhash) so that
//     higher layers may memoize derived values.
//
// Determinism
//
//	Edges are stored sorted by (U,V); neighbor lists are sorted ascending.
//	Every query that returns a slice returns a fresh copy in that order.
//
// Errors
//
//	ErrUnknownVertex, ErrSelfLoop, ErrDuplicateEdge, ErrMissingCoordinate,
//	ErrDimension, ErrNaNInf, ErrTooManyVertices. Match via errors.Is.
package core
