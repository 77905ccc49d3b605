// File: builder_impl_test.go
// Package treebuilder_test contains functional tests for every
// Constructor, verifying taxon/edge counts, degree invariants, and the
// error sentinels for too-few-taxa/missing-RNG inputs, mirroring the
// teacher's builder_impl_test.go table-driven style.
package treebuilder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/arborist-go/phylocore/core"
	"github.com/arborist-go/phylocore/treebuilder"
)

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name    string
		cons    treebuilder.Constructor
		opts    []treebuilder.Option
		wantN   int
		wantErr error
	}{
		{name: "Star(5)", cons: treebuilder.Star(5), wantN: 5},
		{name: "Caterpillar(6)", cons: treebuilder.Caterpillar(6), wantN: 6},
		{name: "Caterpillar(3)", cons: treebuilder.Caterpillar(3), wantN: 3},
		{name: "Balanced(7)", cons: treebuilder.Balanced(7), wantN: 7},
		{
			name:  "RandomTree(8)",
			cons:  treebuilder.RandomTree(8),
			opts:  []treebuilder.Option{treebuilder.WithSeed(42)},
			wantN: 8,
		},
		{name: "Star(2) too few", cons: treebuilder.Star(2), wantErr: treebuilder.ErrTooFewTaxa},
		{name: "Caterpillar(1) too few", cons: treebuilder.Caterpillar(1), wantErr: treebuilder.ErrTooFewTaxa},
		{name: "Balanced(0) too few", cons: treebuilder.Balanced(0), wantErr: treebuilder.ErrTooFewTaxa},
		{name: "RandomTree(4) no rng", cons: treebuilder.RandomTree(4), wantErr: treebuilder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tr, err := treebuilder.Build(tc.opts, tc.cons)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Build: got err %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build: unexpected error: %v", err)
			}

			if got := tr.Ntaxa(); got != tc.wantN {
				t.Errorf("Ntaxa() = %d, want %d", got, tc.wantN)
			}

			seen := make(map[uint32]bool)
			visited := make(map[core.NodeID]bool)
			walkDegrees(t, tr, tr.Base(), visited, seen)
			if len(seen) != tc.wantN {
				t.Errorf("distinct taxon numbers visited = %d, want %d", len(seen), tc.wantN)
			}
			// A connected tree always has exactly nodes-1 edges.
			if got, want := tr.Nedges(), len(visited)-1; got != want {
				t.Errorf("Nedges() = %d, want %d (nodes-1 for a connected tree)", got, want)
			}
		})
	}
}

// walkDegrees recursively visits every reachable node, asserting the
// no-degree-2 invariant (spec.md invariant 4) and collecting taxon
// numbers seen at leaves.
func walkDegrees(t *testing.T, tr *core.Tree, n core.NodeID, visited map[core.NodeID]bool, taxa map[uint32]bool) {
	if visited[n] {
		return
	}
	visited[n] = true

	deg := tr.Degree(n)
	taxon := tr.TaxonNum(n)
	if taxon != core.None {
		if deg > 1 {
			t.Errorf("leaf node (taxon %d) has degree %d, want <= 1", taxon, deg)
		}
		taxa[taxon] = true
	} else if deg == 2 {
		t.Errorf("internal node has degree 2, violates spec invariant 4")
	}

	r := tr.NodeEdge(n)
	if r == core.RingID(core.None) {
		return
	}
	start := r
	for {
		other := tr.RingNode(core.RingOther(r))
		if other != core.NodeID(core.None) {
			walkDegrees(t, tr, other, visited, taxa)
		}
		r = tr.RingNext(r)
		if r == start {
			break
		}
	}
}

func TestRandomTree_Deterministic(t *testing.T) {
	opts := []treebuilder.Option{treebuilder.WithRand(rand.New(rand.NewSource(7)))}
	a, err := treebuilder.Build(opts, treebuilder.RandomTree(10))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	opts2 := []treebuilder.Option{treebuilder.WithRand(rand.New(rand.NewSource(7)))}
	b, err := treebuilder.Build(opts2, treebuilder.RandomTree(10))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.Ntaxa() != b.Ntaxa() || a.Nedges() != b.Nedges() {
		t.Fatalf("two RandomTree builds with the same seed diverged in shape")
	}
}

func TestBuild_NilConstructor(t *testing.T) {
	if _, err := treebuilder.Build(nil, nil); !errors.Is(err, treebuilder.ErrConstructFailed) {
		t.Fatalf("Build(nil constructor): got %v, want ErrConstructFailed", err)
	}
}
