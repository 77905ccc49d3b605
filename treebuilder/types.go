package treebuilder

import (
	"errors"
	"math/rand"

	"github.com/arborist-go/phylocore/core"
)

// ErrTooFewTaxa indicates a topology factory was asked to build a tree
// with fewer taxa than it can represent.
var ErrTooFewTaxa = errors.New("treebuilder: too few taxa")

// ErrNeedRandSource indicates a stochastic constructor (RandomTree) was
// invoked without an RNG resolved into the config (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("treebuilder: rng is required")

// ErrConstructFailed indicates a nil Constructor was passed to Build, or
// an internal invariant the factories rely on did not hold.
var ErrConstructFailed = errors.New("treebuilder: construction failed")

// LengthFn produces a branch length given an RNG (nil when the config
// carries no RNG). Constructors call it once per edge they create.
type LengthFn func(rng *rand.Rand) float64

// DefaultBranchLength is the length assigned to every edge when no
// LengthFn override is configured.
const DefaultBranchLength = 1.0

// DefaultLengthFn always returns DefaultBranchLength.
func DefaultLengthFn(_ *rand.Rand) float64 { return DefaultBranchLength }

// Constructor builds a topology over n taxa directly on t, which Build
// supplies freshly allocated via core.New(). Constructors must:
//   - validate n and return a sentinel error rather than panic,
//   - label leaf nodes with TaxonNum 0..n-1 in ascending order,
//   - leave every internal node at degree >= 3 (no degree-2 internal
//     nodes) except where n is too small to admit one.
type Constructor func(t *core.Tree, cfg config) error
