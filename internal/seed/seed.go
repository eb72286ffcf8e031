// Package seed turns a feature matrix into the flat triangular pairwise
// distance vectors internal/linkage and internal/enumerate consume, handing
// the vector math to gonum rather than hand-rolling it.
package seed

import (
	"math"

	"alphalink/internal/linkage"

	"gonum.org/v1/gonum/floats"
)

// EuclideanDists builds the strict-upper-triangle distance vector for the
// rows of x using Euclidean distance.
func EuclideanDists(x [][]float64) []float64 {
	n := len(x)
	d := linkage.NewTriMatrix(n)
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d[idx] = floats.Distance(x[i], x[j], 2)
			idx++
		}
	}
	return d
}

// CosineDists builds the strict-upper-triangle distance vector for the rows
// of x using cosine distance, arccos(<a,b> / (|a||b|)). A point with zero
// norm is defined to be at +Inf distance from every other point, including
// another zero-norm point — deterministic regardless of which operand is
// zero, since "direction" is undefined for the zero vector.
func CosineDists(x [][]float64) []float64 {
	n := len(x)
	norms := make([]float64, n)
	for i, row := range x {
		norms[i] = floats.Norm(row, 2)
	}

	d := linkage.NewTriMatrix(n)
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if norms[i] == 0 || norms[j] == 0 {
				d[idx] = math.Inf(1)
			} else {
				cos := floats.Dot(x[i], x[j]) / (norms[i] * norms[j])
				if cos > 1 {
					cos = 1
				} else if cos < -1 {
					cos = -1
				}
				d[idx] = math.Acos(cos)
			}
			idx++
		}
	}
	return d
}

// NormalizeMax divides every finite entry of d by the maximum finite entry,
// leaving +Inf entries untouched, so that two distance vectors seeded from
// different sources or metrics sit on comparable scales before they're
// interpolated against each other.
func NormalizeMax(d []float64) []float64 {
	max := 0.0
	for _, v := range d {
		if !math.IsInf(v, 1) && v > max {
			max = v
		}
	}
	out := make([]float64, len(d))
	if max == 0 {
		copy(out, d)
		return out
	}
	for i, v := range d {
		if math.IsInf(v, 1) {
			out[i] = v
		} else {
			out[i] = v / max
		}
	}
	return out
}
