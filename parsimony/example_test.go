package parsimony_test

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
	"github.com/arborist-go/phylocore/parsimony"
)

// quartet builds the unrooted topology ((0,1),(2,3)): leaves 0 and 1
// hang off internal node a, leaves 2 and 3 off internal node b, a-b is
// the single internal edge. Mirrors helpers_test.go's buildQuartet.
func quartet() *core.Tree {
	t := core.New()
	l0, l1, l2, l3 := t.NewNode(), t.NewNode(), t.NewNode(), t.NewNode()
	a, b := t.NewNode(), t.NewNode()
	t.SetTaxonNum(l0, 0)
	t.SetTaxonNum(l1, 1)
	t.SetTaxonNum(l2, 2)
	t.SetTaxonNum(l3, 3)

	attach := func(x, y core.NodeID) {
		e := t.NewEdge()
		_ = t.Attach(e, x, y)
	}
	attach(a, l0)
	attach(a, l1)
	attach(b, l2)
	attach(b, l3)
	attach(a, b)

	t.SetBase(l0)
	return t
}

// collectEdgeScores walks every edge reachable from t.Base() and returns
// each edge's final Fitch score, in the order the walk first reaches it.
func collectEdgeScores(t *core.Tree) []uint32 {
	var scores []uint32
	seen := map[core.EdgeID]bool{}
	var walk func(n core.NodeID)
	visited := map[core.NodeID]bool{}
	walk = func(n core.NodeID) {
		if visited[n] {
			return
		}
		visited[n] = true
		head := t.NodeEdge(n)
		if head == core.RingID(core.None) {
			return
		}
		r := head
		for {
			e := core.RingToEdge(r)
			if !seen[e] {
				seen[e] = true
				scores = append(scores, t.EdgePS(e).Score)
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
	return scores
}

// ExamplePrepare scores the four-taxon quartet ((0,1),(2,3)) from
// spec.md's first end-to-end scenario: taxa 0 and 1 share state A, taxa
// 2 and 3 share state C, so a single character column costs exactly one
// state transition.
func ExamplePrepare() {
	tree := quartet()
	seqs := map[uint32]string{0: "A", 1: "A", 2: "C", 3: "C"}

	ninf, err := parsimony.Prepare(tree, seqs, 1, parsimony.WithEliminateUninformative(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	score, err := parsimony.ScoreTree(tree)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("informative=%d score=%d\n", ninf, score)
	// Output: informative=1 score=1
}

// ExampleComputeViews shows that the Fitch score computed at every edge
// is the same regardless of which edge the recursion treats as the root
// (spec.md §8 "Score invariance under root choice").
func ExampleComputeViews() {
	tree := quartet()
	seqs := map[uint32]string{0: "A", 1: "R", 2: "G", 3: "A"}

	if _, err := parsimony.Prepare(tree, seqs, 1, parsimony.WithEliminateUninformative(false)); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := parsimony.ComputeViews(tree); err != nil {
		fmt.Println("error:", err)
		return
	}

	scores := collectEdgeScores(tree)

	allEqual := true
	for _, s := range scores {
		if s != scores[0] {
			allEqual = false
		}
	}
	fmt.Printf("edges=%d invariant=%v score=%d\n", len(scores), allEqual, scores[0])
	// Output: edges=5 invariant=true score=1
}
