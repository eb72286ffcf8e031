package main

import (
	"fmt"
	"os"
	"sync"

	"alphalink/internal/batchconfig"
	"alphalink/internal/enumerate"
	"alphalink/internal/evaluate"
	"alphalink/internal/linkage"
	"alphalink/internal/report"

	"github.com/spf13/cobra"
)

var (
	batchManifestPath string
	batchParallel     int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run every clustering run named in a YAML manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeBatch(batchManifestPath, batchParallel)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchManifestPath, "manifest", "", "path to a YAML batch manifest (required)")
	batchCmd.Flags().IntVar(&batchParallel, "parallel", 1, "number of manifest runs to execute concurrently")
	_ = batchCmd.MarkFlagRequired("manifest")
}

// batchJob is one manifest entry queued for a worker.
type batchJob struct {
	index int
	spec  batchconfig.RunSpec
}

// batchResult is one worker's outcome for a batchJob, always carrying its
// originating index so results can be reassembled in manifest order
// regardless of which worker finished first.
type batchResult struct {
	index   int
	records []report.RunRecord
	err     error
}

func executeBatch(path string, parallel int) error {
	manifest, err := batchconfig.Load(path)
	if err != nil {
		return err
	}
	if parallel < 1 {
		parallel = 1
	}

	numWorkers := parallel
	if numWorkers > len(manifest.Runs) {
		numWorkers = len(manifest.Runs)
	}

	jobs := make(chan batchJob, len(manifest.Runs))
	results := make(chan batchResult, len(manifest.Runs))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batchWorker(jobs, results)
		}()
	}

	for i, rs := range manifest.Runs {
		jobs <- batchJob{index: i, spec: rs}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]batchResult, len(manifest.Runs))
	for r := range results {
		outcomes[r.index] = r
	}

	grouped := map[string][][]report.RunRecord{}

	for i, rs := range manifest.Runs {
		outcome := outcomes[i]
		if outcome.err != nil {
			return fmt.Errorf("batch: run %q: %w", rs.Name, outcome.err)
		}

		if rs.Output != "" {
			f, err := os.Create(rs.Output)
			if err != nil {
				return fmt.Errorf("batch: create %s: %w", rs.Output, err)
			}
			if err := report.Write(f, outcome.records); err != nil {
				f.Close()
				return err
			}
			f.Close()
		}

		if log != nil {
			log.Info("batch run complete", "name", rs.Name, "intervals", len(outcome.records))
		}

		if rs.GroupID != "" {
			grouped[rs.GroupID] = append(grouped[rs.GroupID], outcome.records)
		}
	}

	for groupID, runs := range grouped {
		agg := report.Aggregate(runs...)
		fmt.Fprintf(os.Stdout, "group %s: %d aggregate breakpoints\n", groupID, len(agg))
		for _, p := range agg {
			fmt.Fprintf(os.Stdout, "  [%g,%g): mean cost %g over %d run(s)\n", p.AlphaMin, p.AlphaMax, p.MeanCost, p.Runs)
		}
	}

	return nil
}

// batchWorker drains jobs and runs each one to completion independently: no
// state is shared between runs beyond the read-only RunSpec each job
// carries, so workers never coordinate except through the jobs/results
// channels.
func batchWorker(jobs <-chan batchJob, results chan<- batchResult) {
	for job := range jobs {
		rs := job.spec
		linkageKind := rs.Linkage
		if linkageKind == "" {
			linkageKind = "single"
		}
		spec := runSpec{
			mode:    string(rs.Mode),
			cost:    string(rs.Cost),
			metric:  string(rs.Metric),
			linkage: linkageKind,
			input:   rs.Input,
			input1:  rs.Input1,
			k:       rs.K,
			output:  rs.Output,
		}

		records, err := runRecords(spec)
		results <- batchResult{index: job.index, records: records, err: err}
	}
}

// runRecords runs one spec end to end and returns its scored records,
// without writing them anywhere — shared by the single-run CLI path
// (which writes immediately) and the batch path (which may also need to
// fold records into a cross-run aggregate).
func runRecords(spec runSpec) ([]report.RunRecord, error) {
	labels, cfg, err := buildEnumerateConfig(spec)
	if err != nil {
		return nil, err
	}

	evalFn, err := evaluatorFor(spec.cost)
	if err != nil {
		return nil, err
	}

	runID := report.NewRun()
	var records []report.RunRecord
	err = enumerate.Run(cfg, func(lb, ub float64, root *linkage.Node) {
		cost := evalFn(root, spec.k, labels)
		records = append(records, report.RunRecord{RunID: runID, AlphaMin: lb, AlphaMax: ub, Cost: cost})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
