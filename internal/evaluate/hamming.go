package evaluate

import (
	"math"

	"alphalink/internal/assign"
	"alphalink/internal/linkage"
)

// allPrunings returns, for every achievable pruning size p in
// [1, node.NumLeaves()], every way to cut node into exactly p subtrees whose
// leaf sets partition node's leaves. This is exhaustive by design: unlike
// majority cost, Hamming cost's assignment step isn't decomposable along a
// single DP recurrence, since the optimal cluster-to-class matching for the
// whole pruning can't be derived from the optimal matchings of its parts in
// isolation.
func allPrunings(node *linkage.Node) map[int][][]*linkage.Node {
	if node.IsLeaf() {
		return map[int][][]*linkage.Node{1: {{node}}}
	}

	left := allPrunings(node.Left)
	right := allPrunings(node.Right)

	result := map[int][][]*linkage.Node{
		1: {{node}},
	}

	leaves := node.NumLeaves()
	for p := 2; p <= leaves; p++ {
		var sets [][]*linkage.Node
		for pl := 1; pl < p; pl++ {
			pr := p - pl
			lsets, lok := left[pl]
			rsets, rok := right[pr]
			if !lok || !rok {
				continue
			}
			for _, ls := range lsets {
				for _, rs := range rsets {
					combined := make([]*linkage.Node, 0, len(ls)+len(rs))
					combined = append(combined, ls...)
					combined = append(combined, rs...)
					sets = append(sets, combined)
				}
			}
		}
		if len(sets) > 0 {
			result[p] = sets
		}
	}
	return result
}

// HammingCost computes the optimal k-pruning Hamming cost of root against
// labels: over every way to cut root into exactly k subtrees, and every
// one-to-one assignment of those k subtrees to ground-truth classes, the
// minimum number of points whose subtree's assigned class disagrees with
// their own label, normalized by the number of points. Returns +Inf if no
// k-pruning exists.
func HammingCost(root *linkage.Node, k int, labels []int) float64 {
	if root == nil || k <= 0 {
		return math.Inf(1)
	}
	classes := numClasses(labels)
	prunings := allPrunings(root)
	sets, ok := prunings[k]
	if !ok {
		return math.Inf(1)
	}

	size := k
	if classes > size {
		size = classes
	}

	best := math.Inf(1)
	for _, cutset := range sets {
		cost := make([][]float64, size)
		for r := range cost {
			cost[r] = make([]float64, size)
		}
		for r, clusterNode := range cutset {
			counts := countsForLeaves(clusterNode.Leaves(), labels, classes)
			total := 0
			for _, c := range counts {
				total += c
			}
			for s := 0; s < size; s++ {
				if s < classes {
					cost[r][s] = float64(total - counts[s])
				} else {
					// padding column: no such ground-truth class exists, so
					// every point in this cluster disagrees with it.
					cost[r][s] = float64(total)
				}
			}
		}

		_, total := assign.Solve(cost)
		if total < best {
			best = total
		}
	}

	return best / float64(root.NumLeaves())
}
