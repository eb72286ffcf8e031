package linkage

// ApplyMerge mutates s in place: merges clusters m.C1 and m.C2 on both the
// low and high distance vectors (each under its own Kind), joins their
// dendrogram fragments, updates sizes if tracked, and drops m.C2 from the
// active set. m.C1 survives and now denotes the merged cluster.
func ApplyMerge(s *State, m MergeCandidate) {
	i, j := m.C1, m.C2

	sizeI, sizeJ := 1, 1
	if s.Sizes != nil {
		sizeI, sizeJ = s.Sizes[i], s.Sizes[j]
	}

	mergeRule(s.DLow, s.N, s.Active, i, j, s.LowKind, sizeI, sizeJ)
	mergeRule(s.DHigh, s.N, s.Active, i, j, s.HighKind, sizeI, sizeJ)

	s.Nodes[i] = NewInternal(s.Nodes[i], s.Nodes[j])

	if s.Sizes != nil {
		s.Sizes[i] = sizeI + sizeJ
	}

	s.Active = removeActive(s.Active, j)
}

func removeActive(active []int, j int) []int {
	out := make([]int, 0, len(active)-1)
	for _, k := range active {
		if k != j {
			out = append(out, k)
		}
	}
	return out
}
