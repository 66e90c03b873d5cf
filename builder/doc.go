// SPDX-License-Identifier: MIT

// Package builder assembles deterministic linkage fixtures: graph topologies
// as composable Constructor closures, coordinate layouts, and a registry of
// named example frameworks.
//
//   - Constructors: Complete, Path, Cycle, Star, Wheel, CompleteBipartite,
//     Grid, Prism, PlatonicSolid. Each adds its own block of fresh vertices,
//     so composing several yields their disjoint union in call order.
//   - Layouts: CircleLayout, LineLayout, RandomLayout (seeded), ExplicitLayout.
//   - BuildFramework runs constructors, places vertices with a layout and
//     names them with the configured NameFn.
//   - Registry / Lookup return the canonical 3D example frameworks used by
//     the analysis and folding tests.
//
// Guarantees:
//
//   - Same constructors, options and seed give identical graphs and coordinates.
//   - Option constructors panic on meaningless input; constructors and layouts
//     return sentinel errors and never panic.
package builder
