package evaluate

import (
	"math"

	"alphalink/internal/linkage"
)

// prune carries, for one subtree, its leaf count, its per-class leaf counts,
// and the best achievable majority cost for every pruning size reachable
// within it.
type prune struct {
	leaves int
	counts []int
	dp     map[int]float64
}

func evalPrune(node *linkage.Node, labels []int, classes int) prune {
	if node.IsLeaf() {
		counts := make([]int, classes)
		counts[labels[node.Point]] = 1
		return prune{leaves: 1, counts: counts, dp: map[int]float64{1: 0}}
	}

	left := evalPrune(node.Left, labels, classes)
	right := evalPrune(node.Right, labels, classes)

	counts := make([]int, classes)
	for c := 0; c < classes; c++ {
		counts[c] = left.counts[c] + right.counts[c]
	}

	leaves := left.leaves + right.leaves
	dp := map[int]float64{1: majorityCostFromCounts(counts)}
	for p := 2; p <= leaves; p++ {
		best := math.Inf(1)
		for pl := 1; pl < p; pl++ {
			pr := p - pl
			lc, lok := left.dp[pl]
			rc, rok := right.dp[pr]
			if lok && rok && lc+rc < best {
				best = lc + rc
			}
		}
		if !math.IsInf(best, 1) {
			dp[p] = best
		}
	}

	return prune{leaves: leaves, counts: counts, dp: dp}
}

// MajorityCost computes the optimal k-pruning majority cost of root against
// labels, normalized by the number of points: for each of the k clusters in
// the best pruning, every point not matching that cluster's plurality label
// counts as an error. Returns +Inf if no k-pruning exists (k exceeds the
// number of leaves, or k <= 0).
func MajorityCost(root *linkage.Node, k int, labels []int) float64 {
	if root == nil || k <= 0 {
		return math.Inf(1)
	}
	classes := numClasses(labels)
	res := evalPrune(root, labels, classes)
	cost, ok := res.dp[k]
	if !ok {
		return math.Inf(1)
	}
	return cost / float64(res.leaves)
}
