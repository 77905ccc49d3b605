package njoin

import "errors"

// ErrTooFewTaxa indicates the distance matrix has fewer than 2 rows;
// there is no tree to build.
var ErrTooFewTaxa = errors.New("njoin: fewer than 2 taxa")

type options struct {
	seed          int64
	randomizeTies bool
	tieEpsilon    float64
}

func defaultOptions() options {
	return options{tieEpsilon: 1e-9}
}

// Option configures Build.
type Option func(*options)

// WithRandomTieBreak makes Build pick uniformly at random among
// Q-criterion candidates within eps of the minimum, instead of the
// deterministic "first row-major minimum" rule — the "relaxed" part of
// relaxed neighbor joining (spec.md's tie-break policy open point).
// seed drives the RNG deterministically.
func WithRandomTieBreak(seed int64, eps float64) Option {
	return func(o *options) {
		o.randomizeTies = true
		o.seed = seed
		o.tieEpsilon = eps
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
