// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra kernel used by linkage analyses.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Rank and NullSpace via Gaussian elimination with partial pivoting.
//     A pivot whose magnitude is below the tolerance is treated as zero and
//     its column is skipped without consuming a row.
//   - RREF exposing the reduced row-echelon form and pivot columns.
//   - LU with row permutation and Determinant, which reports 0 for any
//     pivot below the tolerance (singular or degenerate input).
//
// Numeric policy:
//
//	All tolerances are absolute. DefaultTolerance is 1e-10; override per call
//	with WithTolerance. Inputs are never mutated: every kernel works on a
//	private copy, so calling Rank or NullSpace twice on the same matrix yields
//	identical results.
//
// Guarantees:
//
//	For an m×n matrix, Rank + len(NullSpace) == n.
package matrix
