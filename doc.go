// Package phlite shrinks large graphs before exact persistent-homology
// computation — prune what topology will never miss, then sweep what is left.
//
// 🚀 What is phlite?
//
//	A small, in-memory pre-reduction pipeline for 0/1-dimensional persistence:
//		• Core primitives: a simple undirected graph store with safe concurrent reads
//		• Domination: detect vertices whose closed neighborhood sits inside a neighbor's
//		• Reduction: remove dominated vertices once, up front, instead of per filtration level
//		• Filtration: sweep a degree threshold and report simplex proxy counts per level
//		• Cost: collapse the per-level counts into a single boundary-reduction cost proxy
//
// ✨ Why prune first?
//
//   - Persistent-homology cost grows with the simplicial complex built at
//     every filtration level; a dominated vertex provably changes neither
//     PD₀ nor PD₁ under a degree super-level filtration, so removing it once
//     shrinks every level at no accuracy cost.
//   - Strong-collapse methods re-check domination per level; phlite pays the
//     comparison once against the full graph.
//
// Everything is organized under flat subpackages:
//
//	core/       — undirected simple Graph store (vertices, edges, triangles)
//	domset/     — dominated-vertex detection (pure query)
//	reduce/     — apply a dominated set, keep the full-degree table frozen
//	filtration/ — threshold sweep over the reduced graph
//	phcost/     — scalar cost estimate from per-threshold simplex counts
//	builder/    — deterministic and seeded-random graph constructors
//
// Quick ASCII example:
//
//	1───2          after reduction (1,2 dominated by 3):
//	│╲ ╱│
//	│ 3 │               3───4
//	│╱ ╲│               │   │
//	4   5               5───6
//	 ╲ ╱
//	  6
//
// The induced filtration over the four survivors visits the same birth/death
// pairs in dimensions 0 and 1 as the six-vertex original.
//
// The actual persistence-diagram computation is out of scope: phlite hands
// per-threshold (node, edge, triangle) counts — or the filtration graphs
// themselves — to an external homology engine.
package phlite
