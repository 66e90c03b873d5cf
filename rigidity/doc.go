// SPDX-License-Identifier: MIT

// Package rigidity builds the rigidity matrix (the Jacobian of the squared
// edge-length constraints) of a bar-and-joint framework and answers
// degree-of-freedom queries on it.
//
// What
//
//   - Build: one row per edge, d columns per vertex (vertex-major). The row of
//     edge (u,v) holds p_u - p_v in the columns of u, p_v - p_u in those of v.
//   - TrivialDOF(d) = d(d+1)/2, ExpectedRank(d,n) = d*n - TrivialDOF(d).
//   - Analyze: rank, null space, internal DOF = max(0, d*n - TrivialDOF - rank),
//     infinitesimal rigidity (rank >= ExpectedRank) and the stress count |E| - rank.
//   - TrivialMotions / NonTrivialMotions: rigid motions, and the flexes left
//     once those are projected out of the null space.
//
// Missing coordinates
//
//	A vertex incident to an edge without a coordinate entry is an input
//	error. Build fails with core.ErrMissingCoordinate and logs a warning; it
//	never leaves a zero row behind.
//
// Determinism
//
//	Rows follow the Graph edge order; columns follow ascending vertex ids.
package rigidity
