package linkage

import "math"

// epsilon absorbs floating-point noise when comparing interpolated
// distances or alpha breakpoints.
const epsilon = 1e-10

// NearestMerge returns the pair of active clusters greedy linkage would
// merge at parameter alpha, and the linear function witnessing its
// interpolated distance over the whole alpha axis. Ties are broken first by
// smaller slope (the candidate that stays cheapest over more of the
// interval), then lexicographically by (C1, C2), so the result is
// deterministic regardless of map/slice iteration order.
//
// NearestMerge panics if s has fewer than two active clusters; callers
// always check for a terminal state before calling it, so this indicates a
// caller bug, not a reachable runtime condition.
func NearestMerge(s *State, alpha float64) (MergeCandidate, LinearFunction) {
	if len(s.Active) < 2 {
		panic("linkage: NearestMerge requires at least two active clusters")
	}

	var (
		best     MergeCandidate
		bestFn   LinearFunction
		bestVal  float64
		haveBest bool
	)

	for ai := 0; ai < len(s.Active); ai++ {
		for aj := ai + 1; aj < len(s.Active); aj++ {
			p, q := s.Active[ai], s.Active[aj]
			cand := MergeCandidate{C1: p, C2: q}
			if p > q {
				cand = MergeCandidate{C1: q, C2: p}
			}

			e := Index(s.N, p, q)
			fn := pairFunction(s.DLow[e], s.DHigh[e])
			val := fn.Eval(alpha)

			if !haveBest {
				best, bestFn, bestVal, haveBest = cand, fn, val, true
				continue
			}

			diff := val - bestVal
			switch {
			case diff < -epsilon:
				best, bestFn, bestVal = cand, fn, val
			case diff <= epsilon:
				if isBetterTie(fn, cand, bestFn, best) {
					best, bestFn, bestVal = cand, fn, val
				}
			}
		}
	}

	return best, bestFn
}

// pairFunction builds the linear function interpolating between dLow and
// dHigh. When the two endpoints are identical (including both +Inf, e.g. two
// clusters whose cosine distance is undefined at both ends of the
// interpolation), the naive dHigh-dLow subtraction produces NaN; treat that
// case as the constant function it actually is instead.
func pairFunction(dLow, dHigh float64) LinearFunction {
	if dLow == dHigh {
		return LinearFunction{A: 0, B: dLow}
	}
	return LinearFunction{A: dHigh - dLow, B: dLow}
}

func isBetterTie(fn LinearFunction, cand MergeCandidate, bestFn LinearFunction, best MergeCandidate) bool {
	if fn.A < bestFn.A-epsilon {
		return true
	}
	if math.Abs(fn.A-bestFn.A) <= epsilon {
		if cand.C1 != best.C1 {
			return cand.C1 < best.C1
		}
		return cand.C2 < best.C2
	}
	return false
}
