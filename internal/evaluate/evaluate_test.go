package evaluate

import (
	"math"
	"testing"

	"alphalink/internal/linkage"

	"github.com/stretchr/testify/assert"
)

// perfectTree builds a dendrogram over 4 points where {0,1} and {2,3} merge
// first, then the two pairs merge: ((0,1),(2,3)).
func perfectTree() *linkage.Node {
	left := linkage.NewInternal(linkage.NewLeaf(0), linkage.NewLeaf(1))
	right := linkage.NewInternal(linkage.NewLeaf(2), linkage.NewLeaf(3))
	return linkage.NewInternal(left, right)
}

func TestMajorityCostZeroOnPerfectPruning(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 1, 1}
	assert.Equal(t, 0.0, MajorityCost(root, 2, labels))
}

func TestMajorityCostWholeTreeIsPluralityError(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 0, 1}
	// k=1: one cluster, majority label 0 (3 of 4), 1 error, normalized by 4.
	assert.InDelta(t, 0.25, MajorityCost(root, 1, labels), 1e-9)
}

func TestMajorityCostInfiniteWhenKExceedsLeaves(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 1, 1}
	assert.True(t, math.IsInf(MajorityCost(root, 5, labels), 1))
}

func TestHammingCostZeroOnPerfectPruning(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 1, 1}
	assert.Equal(t, 0.0, HammingCost(root, 2, labels))
}

func TestHammingCostMatchesMajorityOnSingleCluster(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 0, 1}
	assert.InDelta(t, MajorityCost(root, 1, labels), HammingCost(root, 1, labels), 1e-9)
}

func TestHammingCostInfiniteWhenKExceedsLeaves(t *testing.T) {
	root := perfectTree()
	labels := []int{0, 0, 1, 1}
	assert.True(t, math.IsInf(HammingCost(root, 5, labels), 1))
}

func TestHammingCostExceedsMajorityCostWhenTwoClustersShareAMajorityClass(t *testing.T) {
	// Two 4-leaf subtrees, each 3-against-1 in favor of class 0: counts
	// [3,1] and [3,1]. Majority cost may assign both subtrees to class 0
	// (repetition allowed), paying only the one minority point in each:
	// (4-3)+(4-3) = 2, normalized 2/8 = 0.25. Hamming cost must assign the
	// two subtrees to two distinct classes, so at best one subtree keeps
	// its 3-1 majority (cost 1) and the other is forced onto the class it
	// has only 1 of (cost 3): total 4, normalized 4/8 = 0.5 — strictly
	// worse, since the one-to-one constraint forbids doubling up on
	// class 0 the way majority cost does.
	left := linkage.NewInternal(
		linkage.NewInternal(linkage.NewLeaf(0), linkage.NewLeaf(1)),
		linkage.NewInternal(linkage.NewLeaf(2), linkage.NewLeaf(3)),
	)
	right := linkage.NewInternal(
		linkage.NewInternal(linkage.NewLeaf(4), linkage.NewLeaf(5)),
		linkage.NewInternal(linkage.NewLeaf(6), linkage.NewLeaf(7)),
	)
	root := linkage.NewInternal(left, right)
	labels := []int{0, 0, 0, 1, 0, 0, 0, 1}

	majority := MajorityCost(root, 2, labels)
	hamming := HammingCost(root, 2, labels)

	assert.InDelta(t, 0.25, majority, 1e-9)
	assert.InDelta(t, 0.5, hamming, 1e-9)
	assert.Greater(t, hamming, majority)
}

func TestHammingCostChargesFullClusterForUnmatchedPaddingClass(t *testing.T) {
	// k=3 over-clusters a 3-leaf, 2-class tree: every leaf becomes its own
	// singleton cluster, but only 2 ground-truth classes exist, so one
	// cluster can never be matched to a real class. That cluster must be
	// charged its full size against the padding column, not matched for
	// free — otherwise majority_cost <= hamming_cost would not hold.
	root := linkage.NewInternal(linkage.NewLeaf(0), linkage.NewInternal(linkage.NewLeaf(1), linkage.NewLeaf(2)))
	labels := []int{0, 1, 1}

	majority := MajorityCost(root, 3, labels)
	hamming := HammingCost(root, 3, labels)

	assert.Equal(t, 0.0, majority)
	assert.InDelta(t, 1.0/3.0, hamming, 1e-9)
	assert.GreaterOrEqual(t, hamming, majority)
}

func TestHammingCostPenalizesBadCut(t *testing.T) {
	// A dendrogram that groups one point from each true class together:
	// ((0,2),(1,3)) against labels [0,0,1,1] cannot separate the classes at
	// k=2 no matter the assignment: each subtree is half-and-half.
	left := linkage.NewInternal(linkage.NewLeaf(0), linkage.NewLeaf(2))
	right := linkage.NewInternal(linkage.NewLeaf(1), linkage.NewLeaf(3))
	root := linkage.NewInternal(left, right)
	labels := []int{0, 0, 1, 1}

	cost := HammingCost(root, 2, labels)
	assert.InDelta(t, 0.5, cost, 1e-9)
}
