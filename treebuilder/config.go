// config.go mirrors the teacher's builder/config.go: a BuilderOption-style
// functional-options config resolved once per Build call, carrying an
// optional RNG and a branch-length policy in place of the teacher's
// idFn/weightFn pair (taxon numbering here is always the dense sequence
// 0..n-1, so no idFn is needed).
package treebuilder

import "math/rand"

// Option customizes the behavior of a topology Constructor. It mutates
// the config before construction begins. Option constructors never
// panic; they ignore nil inputs.
type Option func(cfg *config)

// config holds the configurable parameters for tree constructors.
type config struct {
	rng      *rand.Rand
	lengthFn LengthFn
}

// newConfig returns a config initialized with defaults (nil RNG,
// DefaultLengthFn), then applies each Option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{lengthFn: DefaultLengthFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh *rand.Rand and installs it as the RNG source,
// for reproducible stochastic topologies (RandomTree).
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLengthFn injects a custom LengthFn. A nil fn is a no-op.
func WithLengthFn(fn LengthFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.lengthFn = fn
		}
	}
}
