// File: types.go
// Role: the IUPAC nucleotide ambiguity code table (spec.md §3's PS bit
//       layout) and the functional options controlling Prepare.
// Grounded on matrix/options.go's options-with-validated-setters shape:
// an unexported Options struct, package-level DefaultX constants, and
// WithX constructors returning a functional Option.
package parsimony

// Nucleotide codes, matching spec.md §3's PS bit layout exactly
// (T=1, G=2, K=3, C=4, Y=5, S=6, B=7, A=8, W=9, R=10, D=11, M=12,
// H=13, V=14, N/X/-=15). Bit 0 = T, bit 1 = G, bit 2 = C, bit 3 = A.
const (
	codeT byte = 1 << iota
	codeG
	codeC
	codeA
	codeAll = codeT | codeG | codeC | codeA // N, X, -
)

// nucleotideCode maps one input character (any case) to its packed
// 4-bit Fitch state-set code. Unrecognized characters map to codeAll,
// matching spec.md §4.H's "N/X/-/unrecognized are all treated as all
// four bases".
func nucleotideCode(ch byte) byte {
	switch ch {
	case 'A', 'a':
		return codeA
	case 'C', 'c':
		return codeC
	case 'G', 'g':
		return codeG
	case 'T', 't', 'U', 'u':
		return codeT
	case 'R', 'r':
		return codeA | codeG
	case 'Y', 'y':
		return codeC | codeT
	case 'S', 's':
		return codeG | codeC
	case 'W', 'w':
		return codeA | codeT
	case 'K', 'k':
		return codeG | codeT
	case 'M', 'm':
		return codeA | codeC
	case 'B', 'b':
		return codeC | codeG | codeT
	case 'D', 'd':
		return codeA | codeG | codeT
	case 'H', 'h':
		return codeA | codeC | codeT
	case 'V', 'v':
		return codeA | codeC | codeG
	default: // N, X, -, anything else
		return codeAll
	}
}

// DefaultEliminateUninformative controls whether Prepare drops
// uninformative columns before allocating PS vectors (spec.md §4.H
// step 1).
const DefaultEliminateUninformative = true

// options holds Prepare's resolved configuration.
type options struct {
	eliminateUninformative bool
}

func defaultOptions() options {
	return options{eliminateUninformative: DefaultEliminateUninformative}
}

// Option configures a Prepare call.
type Option func(*options)

// WithEliminateUninformative overrides whether uninformative columns
// (a column is informative iff two distinct codes each occur at least
// twice with disjoint bit-masks) are dropped before scoring.
func WithEliminateUninformative(on bool) Option {
	return func(o *options) { o.eliminateUninformative = on }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
