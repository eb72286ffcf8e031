package linkage

// Interval is a maximal sub-range of [state.AlphaMin, state.AlphaMax] on
// which Merge is the nearest merge.
type Interval struct {
	LB, UB float64
	Merge  MergeCandidate
}

// Split partitions s's alpha-window into the maximal sub-intervals on which
// a single merge candidate dominates, by walking left to right and, on each
// sub-interval, finding the smallest alpha at which some other candidate's
// linear function crosses below the current winner's. The returned slice is
// never empty and tiles [s.AlphaMin, s.AlphaMax] exactly.
func Split(s *State) []Interval {
	lo, hi := s.AlphaMin, s.AlphaMax

	mergeAtLo, _ := NearestMerge(s, lo)
	mergeAtHi, _ := NearestMerge(s, hi)
	if mergeAtLo == mergeAtHi {
		return []Interval{{LB: lo, UB: hi, Merge: mergeAtLo}}
	}

	var intervals []Interval
	alpha := lo
	for {
		curMerge, curFn := NearestMerge(s, alpha)
		next := nextCrossing(s, curMerge, curFn, alpha, hi)
		intervals = append(intervals, Interval{LB: alpha, UB: next, Merge: curMerge})
		if next >= hi-epsilon {
			break
		}
		alpha = next
	}

	intervals[len(intervals)-1].UB = hi
	return intervals
}

// nextCrossing finds the smallest alpha in (from, to] at which some
// candidate other than curMerge overtakes curFn, or returns to if no such
// crossing exists before it.
func nextCrossing(s *State, curMerge MergeCandidate, curFn LinearFunction, from, to float64) float64 {
	next := to

	for ai := 0; ai < len(s.Active); ai++ {
		for aj := ai + 1; aj < len(s.Active); aj++ {
			p, q := s.Active[ai], s.Active[aj]
			cand := MergeCandidate{C1: p, C2: q}
			if p > q {
				cand = MergeCandidate{C1: q, C2: p}
			}
			if cand == curMerge {
				continue
			}

			e := Index(s.N, p, q)
			g := pairFunction(s.DLow[e], s.DHigh[e])

			if g.A == curFn.A {
				continue // parallel: never crosses (or always tied, already the current winner's problem)
			}

			cross := (g.B - curFn.B) / (curFn.A - g.A)
			if cross > from+epsilon && cross < next {
				next = cross
			}
		}
	}

	if next > to {
		next = to
	}
	if next <= from+epsilon {
		next = to
	}
	return next
}
