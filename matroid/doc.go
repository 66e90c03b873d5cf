// SPDX-License-Identifier: MIT

// Package matroid derives combinatorial rigidity bounds from graph structure
// alone (no coordinates): clique number, maximal cliques, the Laman count
// condition, 2D rigidity-matroid circuits and a minimal-dimension lower bound.
//
// Search model
//
//	Vertex subsets are uint64 bitmasks over ids 0..63; graphs with more
//	vertices get core.ErrTooManyVertices. The exponential searches are
//	bounded:
//	  - CliqueNumber is exhaustive for |V| <= DefaultExactCliqueLimit and a
//	    greedy per-seed extension above (reported via exact=false);
//	  - CheckLaman checks every subset for |V| <= DefaultLamanExhaustiveLimit,
//	    and only subsets up to the subset cap above;
//	  - FindCircuits scans subsets of size 3..min(|V|, DefaultMaxCircuitSize).
//	WithMaxSubsetSize lowers the subset cap for untrusted inputs.
//
// Heuristics
//
//	ComputeMinimalDimension is a lower bound built from the clique number. It
//	is exact for paths and complete graphs, not for arbitrary families
//	(bipartite, circulant).
package matroid
