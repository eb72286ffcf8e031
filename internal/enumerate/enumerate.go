// Package enumerate drives the alpha sweep: it seeds a root linkage.State
// covering alpha in [0,1] and walks every maximal alpha-interval produced by
// greedy linkage, reporting each one's dendrogram to a caller-supplied
// handler. The traversal is depth-first over alpha-subintervals: each
// sub-interval's merge yields a child state, and the walk recurses into it
// until a single cluster (one finished dendrogram) remains.
package enumerate

import (
	"errors"
	"fmt"

	"alphalink/internal/linkage"
	"alphalink/internal/seed"
)

// Metric selects how a DistanceSource with a feature matrix turns rows into
// pairwise distances.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricCosine
)

// DistanceSource describes where one endpoint of the alpha interpolation
// gets its pairwise distances from: either a feature matrix (seeded via
// Metric), or an already-built flat triangular distance vector.
type DistanceSource struct {
	Features [][]float64
	Metric   Metric
	D        []float64 // used when Features is nil
}

func (s DistanceSource) build(n int) ([]float64, error) {
	if s.Features != nil {
		if len(s.Features) != n {
			return nil, fmt.Errorf("enumerate: feature matrix has %d rows, want %d", len(s.Features), n)
		}
		if s.Metric == MetricCosine {
			return seed.CosineDists(s.Features), nil
		}
		return seed.EuclideanDists(s.Features), nil
	}
	if len(s.D) != linkage.NumPairs(n) {
		return nil, fmt.Errorf("enumerate: precomputed distance vector has %d entries, want %d", len(s.D), linkage.NumPairs(n))
	}
	return linkage.CloneTriMatrix(s.D), nil
}

// Mode names one of the two ways a Config can be built: interpolating
// between two linkage rules over one shared distance source (ModeSC,
// ModeSA, ModeAC), or interpolating between two distance matrices under one
// shared linkage rule (ModeDistance).
type Mode int

const (
	ModeSC Mode = iota
	ModeSA
	ModeAC
	ModeDistance
)

// Config configures one Run call: the linkage kind at each endpoint of the
// alpha interpolation, and where each endpoint's pairwise distances come
// from.
type Config struct {
	N                 int
	LowKind, HighKind linkage.Kind
	Low, High         DistanceSource
}

// NewLinkageConfig builds a Config for interpolating between two linkage
// rules over a single distance source (feature matrix or precomputed
// matrix, reused identically for both endpoints). mode must be one of
// ModeSC, ModeSA, or ModeAC.
func NewLinkageConfig(n int, mode Mode, source DistanceSource) (Config, error) {
	var lowKind, highKind linkage.Kind
	switch mode {
	case ModeSC:
		lowKind, highKind = linkage.Single, linkage.Complete
	case ModeSA:
		lowKind, highKind = linkage.Single, linkage.Average
	case ModeAC:
		lowKind, highKind = linkage.Average, linkage.Complete
	default:
		return Config{}, fmt.Errorf("enumerate: NewLinkageConfig does not support mode %d, use NewDistanceConfig", mode)
	}
	return Config{N: n, LowKind: lowKind, HighKind: highKind, Low: source, High: source}, nil
}

// NewDistanceConfig builds a Config for interpolating between two distance
// matrices under one shared linkage rule.
func NewDistanceConfig(n int, kind linkage.Kind, d0, d1 []float64) Config {
	return Config{
		N:        n,
		LowKind:  kind,
		HighKind: kind,
		Low:      DistanceSource{D: d0},
		High:     DistanceSource{D: d1},
	}
}

// Handler receives one (alpha-interval, dendrogram) leaf of the
// enumeration, in ascending alpha order.
type Handler func(alphaMin, alphaMax float64, root *linkage.Node)

// Run enumerates every distinct dendrogram produced by greedy linkage as
// alpha sweeps [0,1], invoking handler once per maximal alpha-interval.
func Run(cfg Config, handler Handler) error {
	if cfg.N < 1 {
		return errors.New("enumerate: N must be >= 1")
	}
	if handler == nil {
		return errors.New("enumerate: handler must not be nil")
	}
	if cfg.N == 1 {
		handler(0, 1, linkage.NewLeaf(0))
		return nil
	}

	dLow, err := cfg.Low.build(cfg.N)
	if err != nil {
		return err
	}
	dHigh, err := cfg.High.build(cfg.N)
	if err != nil {
		return err
	}

	root := linkage.NewInitialState(cfg.N, cfg.LowKind, cfg.HighKind, dLow, dHigh)
	expand(root, handler)
	return nil
}

// expand is the recursive depth-first walk: the call stack is the
// enumerator's work-list. On the last sub-interval of a state's split, the
// state is reused in place rather than cloned, since nothing else will ever
// need its pre-merge contents again.
func expand(s *linkage.State, handler Handler) {
	if len(s.Active) == 1 {
		handler(s.AlphaMin, s.AlphaMax, s.Nodes[s.Active[0]])
		return
	}

	intervals := linkage.Split(s)
	last := len(intervals) - 1
	for idx, iv := range intervals {
		if idx == last {
			s.AlphaMin, s.AlphaMax = iv.LB, iv.UB
			linkage.ApplyMerge(s, iv.Merge)
			expand(s, handler)
			return
		}
		child := s.Clone()
		child.AlphaMin, child.AlphaMax = iv.LB, iv.UB
		linkage.ApplyMerge(child, iv.Merge)
		expand(child, handler)
	}
}

// Leaf is one reported (interval, dendrogram) pair, for callers that want a
// value instead of a callback stream.
type Leaf struct {
	AlphaMin, AlphaMax float64
	Root               *linkage.Node
}

// Collect runs Run and gathers every leaf into a slice, in ascending alpha
// order.
func Collect(cfg Config) ([]Leaf, error) {
	var leaves []Leaf
	err := Run(cfg, func(lb, ub float64, root *linkage.Node) {
		leaves = append(leaves, Leaf{AlphaMin: lb, AlphaMax: ub, Root: root})
	})
	return leaves, err
}
