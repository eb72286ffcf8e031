// Package report collects and writes the output of a clustering run:
// per-interval (alpha_min, alpha_max, cost) records, a run identifier for
// tagging repeated runs, interval-weighted aggregation across runs, and a
// human-readable CLI summary.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// RunRecord is one (alpha_min, alpha_max, cost) triple produced by scoring
// every dendrogram in an enumeration, tagged with the run that produced it.
type RunRecord struct {
	RunID              uuid.UUID
	AlphaMin, AlphaMax float64
	Cost               float64
}

// NewRun returns a fresh run identifier for tagging a batch of RunRecords.
func NewRun() uuid.UUID { return uuid.New() }

// Write emits records to w in ascending alpha_min order, one
// "alpha_min,alpha_max,cost" line per record.
func Write(w io.Writer, records []RunRecord) error {
	sorted := make([]RunRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AlphaMin < sorted[j].AlphaMin })

	for _, r := range sorted {
		if _, err := fmt.Fprintf(w, "%g,%g,%g\n", r.AlphaMin, r.AlphaMax, r.Cost); err != nil {
			return fmt.Errorf("report: write record: %w", err)
		}
	}
	return nil
}

// AggregatePoint is one interval-weighted mean cost over a group of runs,
// on the sub-interval between two consecutive breakpoints across all of
// them.
type AggregatePoint struct {
	AlphaMin, AlphaMax float64
	MeanCost           float64
	Runs               int
}

// Aggregate merges one or more runs of the same underlying sweep (repeated
// folds, different random seeds feeding the same feature matrix, and so on)
// into an interval-weighted mean cost per breakpoint. The result doesn't
// depend on the order the run slices are supplied in.
func Aggregate(runs ...[]RunRecord) []AggregatePoint {
	var bounds []float64
	for _, run := range runs {
		for _, r := range run {
			bounds = append(bounds, r.AlphaMin, r.AlphaMax)
		}
	}
	bounds = dedupeSorted(bounds)
	if len(bounds) < 2 {
		return nil
	}

	points := make([]AggregatePoint, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		mid := (lo + hi) / 2

		var sum float64
		var n int
		for _, run := range runs {
			for _, r := range run {
				if r.AlphaMin <= mid && mid < r.AlphaMax {
					sum += r.Cost
					n++
					break
				}
			}
		}
		if n == 0 {
			continue
		}
		points = append(points, AggregatePoint{AlphaMin: lo, AlphaMax: hi, MeanCost: sum / float64(n), Runs: n})
	}
	return points
}

func dedupeSorted(xs []float64) []float64 {
	sort.Float64s(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x-out[len(out)-1] > 1e-12 {
			out = append(out, x)
		}
	}
	return out
}

// Summary renders a short, human-readable recap of a run's records for the
// CLI: how many dendrograms (one per record) were enumerated and the best
// cost seen.
func Summary(runID uuid.UUID, records []RunRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("run %s: no dendrograms enumerated", runID)
	}
	best := records[0].Cost
	for _, r := range records[1:] {
		if r.Cost < best {
			best = r.Cost
		}
	}
	return fmt.Sprintf(
		"run %s: %s dendrogram%s, best cost %s",
		runID,
		humanize.Comma(int64(len(records))),
		plural(len(records)),
		humanize.FormatFloat("#,###.####", best),
	)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
