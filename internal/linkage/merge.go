package linkage

import "math"

// mergeRule rewrites row i of d in place so that it holds the merged
// cluster {i,j}'s distance to every other active cluster, then marks row j
// dead (+Inf), following kind's Lance-Williams update.
func mergeRule(d []float64, n int, active []int, i, j int, kind Kind, sizeI, sizeJ int) {
	switch kind {
	case Single:
		mergeMin(d, n, active, i, j)
	case Complete:
		mergeMax(d, n, active, i, j)
	case Average:
		mergeAvg(d, n, active, i, j, sizeI, sizeJ)
	default:
		panic("linkage: unknown kind")
	}
}

func mergeMin(d []float64, n int, active []int, i, j int) {
	for _, k := range active {
		if k == i || k == j {
			continue
		}
		eik := Index(n, i, k)
		ejk := Index(n, j, k)
		if d[ejk] < d[eik] {
			d[eik] = d[ejk]
		}
	}
	sentinelRow(d, n, active, j)
}

func mergeMax(d []float64, n int, active []int, i, j int) {
	for _, k := range active {
		if k == i || k == j {
			continue
		}
		eik := Index(n, i, k)
		ejk := Index(n, j, k)
		if d[ejk] > d[eik] {
			d[eik] = d[ejk]
		}
	}
	sentinelRow(d, n, active, j)
}

func mergeAvg(d []float64, n int, active []int, i, j int, sizeI, sizeJ int) {
	wi, wj := float64(sizeI), float64(sizeJ)
	total := wi + wj
	for _, k := range active {
		if k == i || k == j {
			continue
		}
		eik := Index(n, i, k)
		ejk := Index(n, j, k)
		d[eik] = (wi*d[eik] + wj*d[ejk]) / total
	}
	sentinelRow(d, n, active, j)
}

// sentinelRow marks every entry touching the now-dead cluster j as +Inf so
// it can never again be picked as a nearest merge.
func sentinelRow(d []float64, n int, active []int, j int) {
	for _, k := range active {
		if k == j {
			continue
		}
		d[Index(n, j, k)] = math.Inf(1)
	}
}
