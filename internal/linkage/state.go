package linkage

// MergeCandidate names an unordered pair of active cluster indices, always
// stored with C1 < C2.
type MergeCandidate struct {
	C1, C2 int
}

// State bundles everything one branch of the enumeration needs to keep
// going: the current alpha-window, both endpoint distance vectors, which
// original indices are still alive, their sizes (only tracked when average
// linkage is in play on one side), and the dendrogram fragment built so far
// for each live index.
//
// A single struct with an optional Sizes field, rather than a tagged union
// or a linkage-kind-specific subtype, keeps the merge-update table a plain
// three-case switch and mirrors the flat per-run struct the rest of this
// codebase's clustering ancestor used instead of introducing dispatch it
// never needed.
type State struct {
	AlphaMin, AlphaMax float64

	N int

	LowKind, HighKind Kind

	DLow, DHigh []float64

	Active []int

	Sizes []int

	Nodes []*Node
}

// NewInitialState builds the root state covering alpha in [0,1] from the two
// endpoint distance vectors, one leaf per original point.
func NewInitialState(n int, lowKind, highKind Kind, dLow, dHigh []float64) *State {
	active := make([]int, n)
	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		active[i] = i
		nodes[i] = NewLeaf(i)
	}

	var sizes []int
	if lowKind.NeedsSizes() || highKind.NeedsSizes() {
		sizes = make([]int, n)
		for i := range sizes {
			sizes[i] = 1
		}
	}

	return &State{
		AlphaMin: 0,
		AlphaMax: 1,
		N:        n,
		LowKind:  lowKind,
		HighKind: highKind,
		DLow:     dLow,
		DHigh:    dHigh,
		Active:   active,
		Sizes:    sizes,
		Nodes:    nodes,
	}
}

// Clone returns an independent copy of s. Distance vectors, the active list,
// and sizes are deep-copied since merging mutates them in place; dendrogram
// node pointers are shared, since a Node is immutable once built and sibling
// branches of the enumeration legitimately reference the same subtrees.
func (s *State) Clone() *State {
	active := make([]int, len(s.Active))
	copy(active, s.Active)

	nodes := make([]*Node, len(s.Nodes))
	copy(nodes, s.Nodes)

	var sizes []int
	if s.Sizes != nil {
		sizes = make([]int, len(s.Sizes))
		copy(sizes, s.Sizes)
	}

	return &State{
		AlphaMin: s.AlphaMin,
		AlphaMax: s.AlphaMax,
		N:        s.N,
		LowKind:  s.LowKind,
		HighKind: s.HighKind,
		DLow:     CloneTriMatrix(s.DLow),
		DHigh:    CloneTriMatrix(s.DHigh),
		Active:   active,
		Sizes:    sizes,
		Nodes:    nodes,
	}
}
