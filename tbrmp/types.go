package tbrmp

import "errors"

// How selects which TBR neighbors Run retains in the tree's held vector,
// mirroring spec.md §6's tbr_best_neighbors_mp / tbr_better_neighbors_mp /
// tbr_all_neighbors_mp entry points as one driver with a policy knob.
type How int

const (
	// Best retains only neighbors tied for the lowest score seen so far,
	// up to maxHold; a new strictly-better score clears the held set.
	Best How = iota
	// Better retains a neighbor only if it scores strictly below every
	// previously retained one: each acceptance sets the bound to one less
	// than the accepted score.
	Better
	// All retains every neighbor up to maxHold, unconditionally.
	All
)

// MaxHoldAll disables the hold-capacity limit: every accepted neighbor is
// retained.
const MaxHoldAll = ^uint32(0)

// MaxscoreNone disables the upper-bound filter: every neighbor is scored
// and considered regardless of parsimony cost.
const MaxscoreNone = ^uint32(0)

// ErrUnknownHow is returned by Run when opts selects a How value outside
// the declared Best/Better/All range.
var ErrUnknownHow = errors.New("tbrmp: unknown How policy")

type options struct {
	how      How
	maxHold  uint32
	maxscore uint32
	sampling bool
	seed     int64
}

func defaultOptions() options {
	return options{
		how:      Best,
		maxHold:  MaxHoldAll,
		maxscore: MaxscoreNone,
	}
}

// Option configures a Run call.
type Option func(*options)

// WithHow selects the hold policy (default Best).
func WithHow(h How) Option { return func(o *options) { o.how = h } }

// WithMaxHold caps the number of retained neighbors (default MaxHoldAll).
func WithMaxHold(n uint32) Option { return func(o *options) { o.maxHold = n } }

// WithMaxscore discards any neighbor scoring above n before it reaches
// the hold policy (default MaxscoreNone).
func WithMaxscore(n uint32) Option { return func(o *options) { o.maxscore = n } }

// WithReservoirSampling makes How == Best use reservoir sampling to pick
// which tied neighbors survive a full hold set, instead of the default
// bias of keeping the earliest-seen ties and dropping later ones (the
// bound is left as it is) (spec.md §9 open question 3). seed drives the sampling RNG
// deterministically.
func WithReservoirSampling(seed int64) Option {
	return func(o *options) { o.sampling = true; o.seed = seed }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
