// File: simd.go
// Role: the wide-word fast path (spec.md §4.H "SSE2 version operating
//       on 16-byte vectors"), gated by cpufeature.Detect(). A pure-Go
//       64-bit-word kernel stands in for genuine vector intrinsics: Go
//       has no portable compiler-intrinsic story for SSE2/NEON, and
//       hand-written assembly cannot be checked into this tree with any
//       confidence without the toolchain to assemble and test it. The
//       64-bit path still processes twice the nibbles per step of
//       scalar.go's 32-bit path and must remain bit-identical to it;
//       simd_equiv_test.go is the property that would catch drift.
package parsimony

import (
	"encoding/binary"
	"math/bits"

	"github.com/arborist-go/phylocore/core"
	"github.com/arborist-go/phylocore/cpufeature"
)

// fastPathAvailable is a var, not a direct call, so tests can force each
// kernel path deterministically regardless of the host CPU.
var fastPathAvailable = cpufeature.Detect

const (
	loNibbleMagic64 uint64 = 0x1111111111111111
	hiNibbleMagic64 uint64 = 0x8888888888888888
)

func zeroNibbleMask64(x uint64) uint64 {
	z := ^(((x &^ hiNibbleMagic64) + ^hiNibbleMagic64) | x) & hiNibbleMagic64
	return z | (z >> 1) | (z >> 2) | (z >> 3)
}

// pscoreWordsWide is pscoreWords's 64-bit-lane counterpart, used when
// cpufeature.Detect() reports a wide vector unit and len(a) is a
// multiple of 8 (always true: PS.Length() rounds up to a multiple of 32
// characters, i.e. 16 bytes, i.e. 8-byte-aligned).
//
// Complexity: O(len(a)/8).
func pscoreWordsWide(p, a, b []byte) uint32 {
	var score uint32
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		aw := binary.LittleEndian.Uint64(a[i : i+8])
		bw := binary.LittleEndian.Uint64(b[i : i+8])
		and := aw & bw
		mask := zeroNibbleMask64(and)
		if mask != 0 {
			or := aw | bw
			and = and | (or & mask)
			score += uint32(bits.OnesCount64(mask & hiNibbleMagic64))
		}
		binary.LittleEndian.PutUint64(p[i:i+8], and)
	}
	// Drain any trailing 4-byte remainder through the scalar path so
	// callers never need to pad to 8 bytes themselves.
	if i < n {
		score += pscoreWords(p[i:], a[i:], b[i:])
	}
	return score
}

// fscoreWordsWide mirrors pscoreWordsWide without writing back, early
// exiting exactly like fscoreWords.
func fscoreWordsWide(a, b []byte, maxscore uint32) uint32 {
	var score uint32
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		aw := binary.LittleEndian.Uint64(a[i : i+8])
		bw := binary.LittleEndian.Uint64(b[i : i+8])
		and := aw & bw
		mask := zeroNibbleMask64(and)
		if mask != 0 {
			score += uint32(bits.OnesCount64(mask & hiNibbleMagic64))
			if score > maxscore {
				return scoreOverflow
			}
		}
	}
	if i < n {
		rest := fscoreWords(a[i:], b[i:], maxscore-score)
		if rest == scoreOverflow {
			return scoreOverflow
		}
		score += rest
		if score > maxscore {
			return scoreOverflow
		}
	}
	return score
}

// pscore dispatches to the wide or scalar kernel depending on
// cpufeature.Detect(), writing the Fitch intersection of a and b into p
// and returning the node score.
func pscore(p, a, b []byte) uint32 {
	if fastPathAvailable() && len(a)%8 == 0 {
		return pscoreWordsWide(p, a, b)
	}
	return pscoreWords(p, a, b)
}

// fscore dispatches identically to pscore, without writing back.
func fscore(a, b []byte, maxscore uint32) uint32 {
	if fastPathAvailable() && len(a)%8 == 0 {
		return fscoreWordsWide(a, b, maxscore)
	}
	return fscoreWords(a, b, maxscore)
}

// FScore computes the incremental Fitch cost of joining the two views a
// and b (each a core.PS produced by ComputeViews) without writing a
// combined state set anywhere, capped by maxscore (the per-bisection
// pairing of spec.md §4.I step 3's "fscore(ps_a(j), ps_b(k), curmax)";
// tbrmp.Run rescores whole trees and does not call it). Either view may be nil (an unprepared tree), which
// is a caller error surfaced as ErrNotPrepared.
func FScore(a, b *core.PS, maxscore uint32) (uint32, error) {
	if a == nil || b == nil {
		return 0, ErrNotPrepared
	}
	return fscore(a.Data, b.Data, maxscore), nil
}
