// Package assign solves the minimum-cost bipartite assignment problem: given
// an n x n matrix of non-negative costs, find the one-to-one matching of
// rows to columns that minimizes total cost.
package assign

import "math"

// Solve computes the minimum-cost perfect matching for a square,
// non-negative cost matrix using the Hungarian algorithm (Kuhn-Munkres) via
// shortest augmenting paths over a pair of row/column dual potentials,
// O(n^3).
//
// assignment[i] is the column matched to row i; total is the sum of the
// matched costs.
//
// Solve panics if cost is not square. Every caller in this repository builds
// a square matrix itself (padding with zero-cost rows when there are fewer
// clusters than ground-truth classes, and with columns that charge a cluster
// its full size when there are more), so an
// unequal shape reaching here is a caller bug, not a reachable data
// condition.
func Solve(cost [][]float64) (assignment []int, total float64) {
	n := len(cost)
	for _, row := range cost {
		if len(row) != n {
			panic("assign: cost matrix must be square")
		}
	}
	if n == 0 {
		return nil, 0
	}

	const inf = math.MaxFloat64 / 2

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)   // p[j]: row currently matched to column j, 0 = unmatched
	way := make([]int, n+1) // way[j]: previous column on the augmenting path to j

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment = make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			assignment[p[j]-1] = j - 1
			total += cost[p[j]-1][j-1]
		}
	}
	return assignment, total
}
