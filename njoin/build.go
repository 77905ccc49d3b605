// File: build.go
// Role: relaxed neighbor joining, the spec's named-but-external
// "NJ builder" collaborator, ported from
// original_source/trunk/crux/src/CxTreeNj.c's CxTreeNj: the main loop
// recomputes each active cluster's r-sum every round, scales it by
// 1/(nleft-2), picks the pair minimizing d[i][j] - rScaled[i] -
// rScaled[j], joins it under a new node with branch lengths split by
// the standard NJ formula, then compacts the working matrix by
// overwriting the first joined cluster's row/column with the new
// node's distances and moving the last active row/column into the
// second joined cluster's slot. Two clusters remain once nleft reaches
// 2; CxTreeNj's final step joins them directly, which this keeps too.
package njoin

import (
	"fmt"
	"math"

	"github.com/arborist-go/phylocore/core"
	"github.com/arborist-go/phylocore/distmatrix"
)

// Build constructs an unrooted binary *core.Tree over dist's taxa by
// relaxed neighbor joining. Taxon i's leaf node carries TaxonNum i.
//
// Complexity: O(n^3) time, O(n^2) space.
func Build(dist *distmatrix.Matrix, opts ...Option) (*core.Tree, error) {
	o := gatherOptions(opts)

	n := dist.N()
	if n < 2 {
		return nil, fmt.Errorf("njoin.Build: %w", ErrTooFewTaxa)
	}
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("njoin.Build: %w", err)
	}

	tree := core.New()
	leaves := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		leaves[i] = tree.NewNode()
		tree.SetTaxonNum(leaves[i], uint32(i))
	}

	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			d[i][j] = dist.At(i, j)
		}
	}
	clusterNode := make([]core.NodeID, n)
	copy(clusterNode, leaves)
	r := make([]float64, n)

	var rng *splitMix64
	if o.randomizeTies {
		rng = newSplitMix64(o.seed)
	}

	nleft := n
	for nleft > 2 {
		for i := 0; i < nleft; i++ {
			var s float64
			for j := 0; j < nleft; j++ {
				if j != i {
					s += d[i][j]
				}
			}
			r[i] = s
		}
		denom := float64(nleft - 2)

		xMin, yMin, err := pickJoinPair(d, r, nleft, denom, o, rng)
		if err != nil {
			return nil, fmt.Errorf("njoin.Build: %w", err)
		}

		distXY := d[xMin][yMin]
		distX := 0.5 * (distXY + (r[xMin]-r[yMin])/denom)
		distY := distXY - distX
		if distX < 0 {
			distX = 0
		}
		if distY < 0 {
			distY = 0
		}

		newNode := tree.NewNode()
		ex := tree.NewEdge()
		if err := tree.Attach(ex, newNode, clusterNode[xMin]); err != nil {
			return nil, fmt.Errorf("njoin.Build: attach x: %w", err)
		}
		tree.SetLength(ex, distX)
		ey := tree.NewEdge()
		if err := tree.Attach(ey, newNode, clusterNode[yMin]); err != nil {
			return nil, fmt.Errorf("njoin.Build: attach y: %w", err)
		}
		tree.SetLength(ey, distY)

		for k := 0; k < nleft; k++ {
			if k == xMin || k == yMin {
				continue
			}
			nd := 0.5 * (d[xMin][k] + d[yMin][k] - distXY)
			if nd < 0 {
				nd = 0
			}
			d[xMin][k] = nd
			d[k][xMin] = nd
		}
		clusterNode[xMin] = newNode
		d[xMin][xMin] = 0

		last := nleft - 1
		if yMin != last {
			clusterNode[yMin] = clusterNode[last]
			for k := 0; k < nleft; k++ {
				d[yMin][k] = d[last][k]
				d[k][yMin] = d[k][last]
			}
			d[yMin][yMin] = 0
		}
		nleft--
	}

	e := tree.NewEdge()
	if err := tree.Attach(e, clusterNode[0], clusterNode[1]); err != nil {
		return nil, fmt.Errorf("njoin.Build: final join: %w", err)
	}
	tree.SetLength(e, d[0][1])

	tree.SetBase(leaves[0])
	if err := tree.Canonize(); err != nil {
		return nil, fmt.Errorf("njoin.Build: %w", err)
	}
	return tree, nil
}

// pickJoinPair finds the active cluster pair minimizing the Q-criterion
// d[i][j] - (r[i]+r[j])/denom. With o.randomizeTies, it samples
// uniformly among every candidate within o.tieEpsilon of the minimum
// instead of returning the first (lowest row-major) minimum found.
func pickJoinPair(d [][]float64, r []float64, nleft int, denom float64, o options, rng *splitMix64) (int, int, error) {
	type pair struct{ i, j int }

	best := math.Inf(1)
	var bestPair pair
	for i := 0; i < nleft; i++ {
		for j := i + 1; j < nleft; j++ {
			q := d[i][j] - (r[i]+r[j])/denom
			if q < best {
				best = q
				bestPair = pair{i, j}
			}
		}
	}

	if !o.randomizeTies {
		return bestPair.i, bestPair.j, nil
	}

	var ties []pair
	for i := 0; i < nleft; i++ {
		for j := i + 1; j < nleft; j++ {
			q := d[i][j] - (r[i]+r[j])/denom
			if q <= best+o.tieEpsilon {
				ties = append(ties, pair{i, j})
			}
		}
	}
	if len(ties) <= 1 {
		return bestPair.i, bestPair.j, nil
	}
	p := ties[rng.intn(len(ties))]
	return p.i, p.j, nil
}
