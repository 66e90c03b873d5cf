// SPDX-License-Identifier: MIT

// Package folding proposes and applies length-preserving motions that lower
// the dimension spanned by a framework.
//
// Dimension measure
//
//	The edge-vector rank (rank of the |E| x d matrix of p_v - p_u) is the
//	quantity a fold must strictly decrease. CoordinateRank (rank of the
//	centered coordinates) is reported alongside; both agree on connected
//	frameworks.
//
// Operations
//
//   - Edge alignment: at a pivot a with neighbors b and c, rotate the
//     component of c in G-{a} about a so that a->c becomes parallel (or
//     anti-parallel) to a->b. The rotation is the planar rotation of R^d
//     taking u = (p_c-p_a)/|p_c-p_a| to w = ±(p_b-p_a)/|p_b-p_a|:
//     x' = x - ((u+w)·x)/(1+u·w) (u+w) + 2(u·x) w.
//     When w = -u the rotation is a half turn in the plane of u and the
//     basis direction u is least aligned with.
//   - Hinge rotation (3D only): two maximal cliques sharing one edge give an
//     axis; the second clique's non-axis vertices rotate about it
//     (Rodrigues). The hinge is dropped before any angle is tried when one of
//     them has a neighbor that is neither on the axis nor rotating. Fixed
//     angles ±30, 45, 60, 90, 120 and 180 degrees are tried together with the
//     two angles that make the cliques coplanar.
//
// Every proposal is evaluated before it is listed: lengths must stay within
// the length tolerance (default 0.01 absolute) and the resulting ranks are
// recorded. Apply recomputes the transform from the operation's parameters
// and rejects it when lengths or declared ranks do not hold.
//
// State machine
//
//	Unfolded(d) --Apply--> Unfolded(d' < d) --> ... --> Minimal, where
//	Minimal means Candidates is empty. Minimize walks that chain greedily and
//	returns every intermediate snapshot so callers can undo.
package folding
