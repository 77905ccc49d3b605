// File: views.go
// Role: ScoreTree (mp_score, spec.md §4.H post-order score_recurse) and
//       ComputeViews (the views_recurse pre-order pass that gives every
//       ring a valid "view" PS usable from any rooting edge, spec.md
//       §4.H "View calculation for enumeration").
// AI-HINT (file):
//   - pscoreRecurse's degree switch mirrors spec.md's score_recurse
//     exactly: 0 others = leaf, 1 other = pass-through (degree-2
//     relative to entry), 2 others = ordinary binary internal node,
//     anything else is rejected (ErrHighDegree) since Fitch scoring
//     here only supports resolved binary topologies.
//   - View caching: pscoreRecurse sets a.Parent = ps / b.Parent = ps
//     after combining a and b into ps; a later call that finds both
//     children still pointing at the same target reuses ps.Score
//     instead of recomputing (spec.md §4.H "View caching").
package parsimony

import "github.com/arborist-go/phylocore/core"

// ScoreTree computes the Fitch parsimony score of the whole tree
// (mp_score), rooting the post-order pass at an arbitrary edge incident
// to Base. Prepare must have been called first.
//
// Complexity: O(nleaves*ninf/8).
func ScoreTree(t *core.Tree) (uint32, error) {
	root := t.NodeEdge(t.Base())
	if root == core.RingID(core.None) {
		return 0, ErrNotPrepared
	}
	a, err := pscoreRecurse(t, root)
	if err != nil {
		return 0, err
	}
	b, err := pscoreRecurse(t, core.RingOther(root))
	if err != nil {
		return 0, err
	}
	e := core.RingToEdge(root)
	ps := t.EdgePS(e)
	if ps == nil {
		return 0, ErrNotPrepared
	}
	ns := pscore(ps.Data, a.Data, b.Data)
	ps.Score = a.Score + b.Score + ns
	a.Parent, b.Parent = ps, ps
	return ps.Score, nil
}

// pscoreRecurse computes (or returns the cached) "upward" PS at ring r:
// the Fitch state set summarizing everything reachable through r,
// excluding the node's entry back toward the caller.
func pscoreRecurse(t *core.Tree, r core.RingID) (*core.PS, error) {
	others := t.Others(r)
	switch len(others) {
	case 0:
		ps := t.RingPS(r)
		if ps == nil {
			return nil, ErrNotPrepared
		}
		return ps, nil
	case 1:
		child, err := pscoreRecurse(t, core.RingOther(others[0]))
		if err != nil {
			return nil, err
		}
		t.SetRingPS(r, child)
		return child, nil
	case 2:
		a, err := pscoreRecurse(t, core.RingOther(others[0]))
		if err != nil {
			return nil, err
		}
		b, err := pscoreRecurse(t, core.RingOther(others[1]))
		if err != nil {
			return nil, err
		}
		ps := t.RingPS(r)
		if ps == nil {
			return nil, ErrNotPrepared
		}
		if ps.Parent != nil && a.Parent == ps && b.Parent == ps {
			return ps, nil
		}
		ns := pscore(ps.Data, a.Data, b.Data)
		ps.Score = a.Score + b.Score + ns
		a.Parent, b.Parent = ps, ps
		return ps, nil
	default:
		return nil, ErrHighDegree
	}
}

// ComputeViews runs the post-order pass (as ScoreTree does) and then a
// pre-order pass that gives every ring a valid "downward" view, so any
// edge's two ring PS can be combined to reproduce the whole-tree score
// as if that edge were the root (spec.md §8 "score invariance under
// root choice"). Every edge's PS is set to that combination.
//
// Complexity: O(nnodes * ninf/8).
func ComputeViews(t *core.Tree) error {
	root := t.NodeEdge(t.Base())
	if root == core.RingID(core.None) {
		return ErrNotPrepared
	}
	if _, err := ScoreTree(t); err != nil {
		return err
	}
	if err := viewsRecurse(t, root); err != nil {
		return err
	}
	if err := viewsRecurse(t, core.RingOther(root)); err != nil {
		return err
	}
	return setAllEdgeScores(t)
}

// viewsRecurse computes, for each of the other two rings at r's node, the
// downward view stored on that ring: the PS summarizing everything NOT
// beyond that ring's edge, by combining the PS on the far side of r with
// the upward PS at the far end of the sibling ring. The far ends' own
// PS (leaf states included) are left as they are.
func viewsRecurse(t *core.Tree, r core.RingID) error {
	others := t.Others(r)
	if len(others) != 2 {
		return nil
	}
	ra, rb := others[0], others[1]
	psR := t.RingPS(core.RingOther(r))
	if psR == nil {
		return ErrNotPrepared
	}

	psA := t.RingPS(core.RingOther(ra))
	psB := t.RingPS(core.RingOther(rb))
	if psA == nil || psB == nil {
		return ErrNotPrepared
	}

	// The downward view on ra combines what lies beyond r with what lies
	// beyond rb (everything except what lies beyond ra).
	oa := core.RingOther(ra)
	ob := core.RingOther(rb)
	downA := t.RingPS(ra)
	if downA == nil {
		return ErrNotPrepared
	}
	downA.Score = psR.Score + psB.Score + pscore(downA.Data, psR.Data, psB.Data)

	downB := t.RingPS(rb)
	if downB == nil {
		return ErrNotPrepared
	}
	downB.Score = psR.Score + psA.Score + pscore(downB.Data, psR.Data, psA.Data)

	if err := viewsRecurse(t, oa); err != nil {
		return err
	}
	return viewsRecurse(t, ob)
}

// setAllEdgeScores sets every edge's PS to the combination of its two
// rings' views, which must all agree once ComputeViews has run.
func setAllEdgeScores(t *core.Tree) error {
	seen := map[core.EdgeID]bool{}
	var walkErr error
	var walk func(n core.NodeID)
	seenNodes := map[core.NodeID]bool{}
	walk = func(n core.NodeID) {
		if seenNodes[n] || walkErr != nil {
			return
		}
		seenNodes[n] = true
		head := t.NodeEdge(n)
		if head == core.RingID(core.None) {
			return
		}
		r := head
		for {
			e := core.RingToEdge(r)
			if !seen[e] {
				seen[e] = true
				r0, r1 := core.EdgeToRing(e, 0), core.EdgeToRing(e, 1)
				psA, psB := t.RingPS(r0), t.RingPS(r1)
				eps := t.EdgePS(e)
				if psA == nil || psB == nil || eps == nil {
					walkErr = ErrNotPrepared
					return
				}
				ns := pscore(eps.Data, psA.Data, psB.Data)
				eps.Score = psA.Score + psB.Score + ns
			}
			other := t.RingNode(core.RingOther(r))
			if other != core.NodeID(core.None) {
				walk(other)
			}
			r = t.RingNext(r)
			if r == head {
				break
			}
		}
	}
	walk(t.Base())
	return walkErr
}
