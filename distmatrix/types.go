package distmatrix

import "errors"

// Sentinel errors for distmatrix package operations.
var (
	// ErrDimensionMismatch indicates a non-square input or a row of the
	// wrong length.
	ErrDimensionMismatch = errors.New("distmatrix: dimension mismatch")

	// ErrNonZeroDiagonal indicates a diagonal entry other than zero.
	ErrNonZeroDiagonal = errors.New("distmatrix: diagonal entry is non-zero")

	// ErrNotSymmetric indicates m[i][j] and m[j][i] disagree beyond
	// tolerance.
	ErrNotSymmetric = errors.New("distmatrix: matrix is not symmetric")

	// ErrNegativeDistance indicates a negative (finite) distance entry.
	ErrNegativeDistance = errors.New("distmatrix: negative distance entry")

	// ErrIncomplete indicates Complete could not resolve every +Inf
	// entry, meaning the underlying graph of known distances is
	// disconnected.
	ErrIncomplete = errors.New("distmatrix: matrix still has unreachable entries after completion")

	// ErrEigenFailed indicates Jacobi rotation did not converge within
	// the configured iteration budget.
	ErrEigenFailed = errors.New("distmatrix: eigen decomposition did not converge")
)

// DefaultSymmetryTolerance is the default absolute tolerance Validate and
// Stress use when comparing m[i][j] to m[j][i].
const DefaultSymmetryTolerance = 1e-9

type options struct {
	tolerance  float64
	components int
	maxIter    int
}

func defaultOptions() options {
	return options{tolerance: DefaultSymmetryTolerance, components: 2, maxIter: 200}
}

// Option configures Validate/Stress behavior.
type Option func(*options)

// WithTolerance overrides the absolute symmetry tolerance (default
// DefaultSymmetryTolerance).
func WithTolerance(tol float64) Option { return func(o *options) { o.tolerance = tol } }

// WithComponents sets how many embedding dimensions Stress uses (default
// 2, the conventional planar MDS embedding).
func WithComponents(k int) Option { return func(o *options) { o.components = k } }

// WithMaxIterations caps the number of Jacobi rotations Stress runs
// (default 200); each rotation zeroes the largest off-diagonal entry.
func WithMaxIterations(n int) Option { return func(o *options) { o.maxIter = n } }

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
