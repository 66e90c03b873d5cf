// SPDX-License-Identifier: MIT

// Package cayley computes Cayley-Menger determinants, simplex volumes and
// affine dimensions from pairwise distances, plus the sphere tangency gap used
// to classify two-sphere intersections.
//
// For k+1 points the bordered matrix is (k+2)x(k+2): a zero corner, a border
// of ones and the squared distances inside. Its determinant comes from the
// pivoted LU of package matrix with an absolute pivot tolerance of
// DefaultPivotTolerance; a smaller pivot yields exactly 0 (degenerate input).
//
//	V^2 = (-1)^(k+1) * CM / (2^k * (k!)^2)
//
// SimplexVolume takes |V^2| before the square root so that sign noise on
// near-degenerate input cannot produce NaN.
package cayley
