// SPDX-License-Identifier: MIT

// Package analysis is the one-call entry point over the linkage packages.
//
// An Analyzer combines, for one framework:
//   - rigidity (rank, DOF counts, null space) in the configured dimension;
//   - matroid bounds (cliques, Laman status, circuits, minimal dimension);
//   - the Cayley-Menger affine dimension of the coordinates;
//   - the folding state with its rank-reducing candidates.
//
// Reports are memoized in an LRU cache keyed by core.Framework.Fingerprint.
// Cached reports are shared between callers and must be treated as read-only.
//
// Config is plain data with yaml tags; LoadConfig/ParseConfig start from
// DefaultConfig so a file only needs the keys it overrides:
//
//	dimension: 3
//	length_tolerance: 0.005
//	hinge_angles: [45, 90, 180]
package analysis
