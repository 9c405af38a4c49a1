// Package filtration sweeps an activation threshold over a reduced graph
// and reports, per threshold, the simplex proxy triple (nodes, edges,
// triangle degree sum) of the induced filtration graph.
//
// Two symmetric policies exist; phlite implements both and is explicit
// about the distinction:
//
//   - SuperLevel (default): the threshold t descends from the reduced
//     graph's maximum degree to its minimum, and a vertex survives at t iff
//     its FULL-graph degree ≥ t.
//   - SubLevel: t ascends from the minimum to the maximum, a vertex
//     survives iff its full-graph degree ≤ t.
//
// Only SuperLevel is monotone-compatible with dominated-vertex pruning:
// a dominating vertex has a superset closed neighborhood, hence at least
// as large a degree, hence enters a super-level filtration no later than
// any vertex it dominates. Direction.MonotoneCompatible encodes that fact,
// and the domset package refuses to validate a reduction against SubLevel.
//
// The vertex pool at every threshold is the reduced graph, but the
// membership predicate always reads the frozen full-graph degree table —
// never the reduced graph's own degrees, which drift once vertices are
// removed. Each threshold derives a fresh induced subgraph; the reduced
// graph itself is never mutated, which is also what makes the optional
// worker fan-out (WithWorkers) safe.
package filtration
