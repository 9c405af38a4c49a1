// Package reduce applies a dominated-vertex set to a full graph: it clones
// the input, freezes the full-graph degree table (the activation values the
// later sweep reads), removes the dominated vertices from the clone and
// hands back both graphs side by side.
//
// The full graph is read-only after construction and the frozen degree
// table never changes, so the reduced graph can shrink without the
// filtration coordinates drifting — the central invariant of the pipeline.
//
// Detection runs a single pass by default, matching the pruning guarantee
// as stated. A second pass over the reduced graph may legitimately find
// fresh dominated vertices (domination is not closed under one pass);
// WithClosure opts into repeating detection until a fixed point. Closure is
// offered as an explicit extension, not the default.
package reduce
