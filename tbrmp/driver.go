// File: driver.go
// Role: component I, the TBR-MP driver: a double loop over every TBR
// neighbor, scored and filtered by a hold policy, grounded on the nested
// candidate-pair scan shape of the teacher's tsp/two_opt.go (explicit
// pre-declared loop state, deterministic scan order, sentinel-wrapped
// errors) rather than on any parsimony-specific precedent in the pack.
package tbrmp

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
	"github.com/arborist-go/phylocore/parsimony"
)

// BestNeighbors retains the lowest-scoring TBR neighbors of t, up to
// maxHold, into t's held vector (spec.md §6 tbr_best_neighbors_mp).
//
// Complexity: see package doc.
func BestNeighbors(t *core.Tree, maxHold uint32) error {
	return Run(t, WithHow(Best), WithMaxHold(maxHold))
}

// BetterNeighbors retains each TBR neighbor that scores strictly below
// every previously retained one, up to maxHold (spec.md §6 tbr_better_neighbors_mp).
func BetterNeighbors(t *core.Tree, maxHold uint32) error {
	return Run(t, WithHow(Better), WithMaxHold(maxHold))
}

// AllNeighbors retains every TBR neighbor unconditionally (spec.md §6
// tbr_all_neighbors_mp).
func AllNeighbors(t *core.Tree) error {
	return Run(t, WithHow(All), WithMaxHold(MaxHoldAll))
}

// Run sweeps every TBR neighbor of t, scores each with Fitch parsimony,
// and replaces t's held vector with the neighbors opts' policy selects.
// t itself is never mutated; each candidate is materialized on a
// throwaway duplicate (spec.md §4.I: "the driver must not leave the tree
// mutated after the sweep").
//
// Complexity: see package doc. Errors: ErrUnknownHow.
func Run(t *core.Tree, opts ...Option) error {
	o := gatherOptions(opts)
	t.HeldFinish()

	total := t.TbrNNeighbors()
	if total == 0 {
		return nil
	}

	var (
		held          []core.Held
		curmax        = o.maxscore
		rng           = newSplitMix64(o.seed)
		reservoirSeen uint32
		k             uint32
	)

	for k = 0; k < total; k++ {
		bisect, ra, rb, err := t.TbrNeighbor(k)
		if err != nil {
			return fmt.Errorf("tbrmp: decode neighbor %d: %w", k, err)
		}

		scratch := t.Dup()
		if err := scratch.Tbr(bisect, ra, rb); err != nil {
			return fmt.Errorf("tbrmp: materialize neighbor %d: %w", k, err)
		}
		score, err := parsimony.ScoreTree(scratch)
		scratch.Delete()
		if err != nil {
			return fmt.Errorf("tbrmp: score neighbor %d: %w", k, err)
		}

		if o.maxscore != MaxscoreNone && score > o.maxscore {
			continue
		}

		switch o.how {
		case Best:
			held = applyBest(held, o, &curmax, rng, &reservoirSeen, k, score)
		case Better:
			held = applyBetter(held, o, &curmax, k, score)
		case All:
			if o.maxHold == MaxHoldAll || uint32(len(held)) < o.maxHold {
				held = append(held, core.Held{NeighborIndex: k, Score: score})
			}
		default:
			return ErrUnknownHow
		}
	}

	for _, h := range held {
		t.AppendHeld(h.NeighborIndex, h.Score)
	}
	return nil
}

// applyBest implements the Best hold policy: a strictly better score
// clears the reservoir and tightens the bound; a tie is appended while
// room remains, then either dropped (spec-faithful bias) or reservoir-
// sampled into a random slot, per o.sampling.
func applyBest(held []core.Held, o options, curmax *uint32, rng *splitMix64, reservoirSeen *uint32, k, score uint32) []core.Held {
	if *curmax == MaxscoreNone || score < *curmax {
		held = held[:0]
		*curmax = score
		*reservoirSeen = 0
	}
	if score > *curmax {
		return held
	}
	if o.maxHold != MaxHoldAll && uint32(len(held)) >= o.maxHold {
		idx := o.maxHold + *reservoirSeen
		j := rng.intn(idx + 1)
		*reservoirSeen++
		if o.sampling && j < o.maxHold {
			held[j] = core.Held{NeighborIndex: k, Score: score}
		}
		return held
	}
	return append(held, core.Held{NeighborIndex: k, Score: score})
}

// applyBetter implements the Better hold policy: accept while no worse
// than curmax (unbounded until the first acceptance), then tighten
// curmax to one less than the accepted score.
func applyBetter(held []core.Held, o options, curmax *uint32, k, score uint32) []core.Held {
	if *curmax != MaxscoreNone && score > *curmax {
		return held
	}
	if o.maxHold != MaxHoldAll && uint32(len(held)) >= o.maxHold {
		return held
	}
	held = append(held, core.Held{NeighborIndex: k, Score: score})
	if score == 0 {
		*curmax = 0
	} else {
		*curmax = score - 1
	}
	return held
}
