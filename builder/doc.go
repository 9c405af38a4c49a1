// Package builder constructs core graphs for the phlite pipeline:
// deterministic families (Path, Cycle, Complete, Star, Wheel, Grid),
// seeded random families (RandomSparse, RandomRegular) and ingestion from
// explicit edge lists.
//
// Determinism policy:
//
//   - Vertex IDs come from a configurable ID scheme; the default is the
//     decimal index ("0", "1", ...).
//   - Stochastic constructors draw from a seeded math/rand source. Seed 0
//     selects a fixed default seed, so the zero value is still reproducible;
//     no time-based randomness hides anywhere.
//
// All constructors validate their parameters eagerly and return sentinel
// errors; none of them panic.
package builder
