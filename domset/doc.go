// Package domset detects dominated vertices: every v whose closed
// neighborhood N⁺(v) = {v} ∪ neighbors(v) is contained in N⁺(w) for some
// neighbor w. Such a vertex can be removed once, up front, without changing
// the 0- or 1-dimensional persistence diagram of a compatible filtration —
// that is the whole point of the phlite pipeline.
//
// Correctness precondition (documented, not re-derived here): the removal
// is valid only when the activation function of the later sweep admits a
// dominating vertex no later than any vertex it dominates. Full-graph
// degree under a super-level sweep satisfies this — a dominating vertex's
// closed neighborhood is a superset, hence its degree is at least as large,
// hence it is admitted at least as early. Find therefore takes the intended
// filtration.Direction and refuses any direction whose MonotoneCompatible
// is false; swapping in sub-level or a non-monotone activation requires
// re-deriving the precondition, not deleting the check.
//
// Determinism: vertices are visited in the sorted-ID total order exposed by
// core.Graph.Vertices, and neighbors in sorted order too, so the twin
// tie-break ("first visited survives") is reproducible across runs and
// implementations rather than an accident of map iteration.
package domset
