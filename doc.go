// Package linkage analyzes bar-and-joint frameworks: graphs whose edges are
// rigid distance constraints, placed at coordinates in R^d.
//
// 🚀 What does linkage answer?
//
//	• Is this framework rigid?  rank of the rigidity matrix, DOF counts, flexes
//	• What does the graph alone say?  cliques, Laman counts, circuits, bounds
//	• How flat is it?  Cayley-Menger volumes and affine dimension
//	• Can it fold flatter?  edge alignments and hinge rotations that keep every bar
//	• Where does it flex?  finite nudges projected back onto the bar lengths
//
// ✨ Design
//
//   - Immutable snapshots: every call takes a Graph + Coordinates and returns new values
//   - Sentinel errors matched with errors.Is; options panic only on nonsense arguments
//   - Silent by default: pass a *slog.Logger to see warnings and rejected proposals
//
// Packages:
//
//	core/       Graph, Edge, Coordinates, Framework, Attributes
//	matrix/     rank, RREF, null space, LU and determinant under tolerance
//	bfs/, dfs/  reachability, components and cycle checks over core graphs
//	rigidity/   rigidity matrix, DOF, trivial and non-trivial motions
//	matroid/    clique number, maximal cliques, Laman, circuits, minimal dimension
//	cayley/     Cayley-Menger determinant, simplex volume, sphere tangency
//	folding/    dimension-reducing folds, Apply, Minimize
//	projector/  FABRIK-style constraint projection and Nudge
//	builder/    graph constructors, layouts and the example registry
//	analysis/   one-call Report with YAML config and an LRU cache
//
// Quick ASCII example:
//
//	    3
//	   / \
//	  0───1      two triangles sharing the hinge 0-1 ("book");
//	   \ /       one hinge rotation lays the book flat: minimal(2).
//	    2
//
//	go get github.com/katalvlaran/linkage
package linkage
