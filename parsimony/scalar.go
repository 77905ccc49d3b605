// File: scalar.go
// Role: the reference Fitch-intersection kernel (spec.md §4.H pscore/
//       fscore), operating 32 bits (8 packed nibbles) at a time using a
//       SWAR zero-nibble population-count trick. Both the portable path
//       and simd.go's fast path must agree with this function bit for
//       bit; simd_equiv_test.go asserts it.
// Grounded on spec.md's own "bit-population trick" description; uses
// stdlib encoding/binary and math/bits, since no example repo performs
// SWAR bit tricks (this is the one genuinely novel kernel in the pack).
package parsimony

import (
	"encoding/binary"
	"math/bits"
)

const (
	loNibbleMagic uint32 = 0x11111111
	hiNibbleMagic uint32 = 0x88888888
)

// zeroNibbleMask returns, for each of x's 8 nibbles, 0xF at that nibble's
// position iff the nibble is exactly zero, else 0. It is exact per lane:
// adding 7 to each nibble's low three bits never carries into the next
// nibble, so no lane's result depends on its neighbours.
func zeroNibbleMask(x uint32) uint32 {
	z := ^(((x &^ hiNibbleMagic) + ^hiNibbleMagic) | x) & hiNibbleMagic
	return z | (z >> 1) | (z >> 2) | (z >> 3)
}

// pscoreWords computes the Fitch intersection of a and b into p,
// word-at-a-time, and returns the node score (the number of character
// positions where the intersection was empty and a union was emitted
// instead). len(a) == len(b) == len(p), and must be a multiple of 4
// (guaranteed by PS.Length() always rounding up to a multiple of 32
// characters, i.e. 16 bytes).
//
// Complexity: O(len(a)/4).
func pscoreWords(p, a, b []byte) uint32 {
	var score uint32
	for i := 0; i+4 <= len(a); i += 4 {
		aw := binary.LittleEndian.Uint32(a[i : i+4])
		bw := binary.LittleEndian.Uint32(b[i : i+4])
		and := aw & bw
		mask := zeroNibbleMask(and)
		if mask != 0 {
			or := aw | bw
			and = and | (or & mask)
			score += uint32(bits.OnesCount32(mask & hiNibbleMagic))
		}
		binary.LittleEndian.PutUint32(p[i:i+4], and)
	}
	return score
}

// fscoreWords computes the same per-character logic as pscoreWords but
// does not materialize the intersection; it early-exits with
// math.MaxUint32's caller-visible sentinel (spec.md §4.H "fscore") as
// soon as the running score exceeds maxscore.
//
// Complexity: O(len(a)/4), less on early exit.
func fscoreWords(a, b []byte, maxscore uint32) uint32 {
	var score uint32
	for i := 0; i+4 <= len(a); i += 4 {
		aw := binary.LittleEndian.Uint32(a[i : i+4])
		bw := binary.LittleEndian.Uint32(b[i : i+4])
		and := aw & bw
		mask := zeroNibbleMask(and)
		if mask != 0 {
			score += uint32(bits.OnesCount32(mask & hiNibbleMagic))
			if score > maxscore {
				return scoreOverflow
			}
		}
	}
	return score
}

// scoreOverflow is fscoreWords's early-exit sentinel (spec.md §4.H:
// "u32::MAX as soon as score > maxscore").
const scoreOverflow uint32 = 0xFFFFFFFF
