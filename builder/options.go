package builder

import (
	"math/rand"
	"strconv"
)

// defaultSeed is the fixed seed used when callers pass seed 0; arbitrary
// but stable, so the zero value stays reproducible.
const defaultSeed int64 = 1

// Option configures a constructor via functional arguments.
type Option func(*config)

// config aggregates the builder knobs; it is resolved per call, so no
// global state survives between constructors.
type config struct {
	idFn func(int) string
	seed int64
}

// defaultConfig returns decimal IDs and the fixed default seed.
func defaultConfig() config {
	return config{idFn: decimalID, seed: defaultSeed}
}

// resolve applies the options in order (later overrides earlier).
func resolve(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// rng materializes the deterministic random stream for this call.
func (c config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// WithSeed fixes the random stream of stochastic constructors. Seed 0
// selects the package default seed (still deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

// WithIDScheme overrides how a vertex index maps to its ID, e.g. for
// human-readable labels in examples and golden tests.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}
