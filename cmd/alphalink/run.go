package main

import (
	"fmt"
	"os"

	"alphalink/internal/dataset"
	"alphalink/internal/enumerate"
	"alphalink/internal/evaluate"
	"alphalink/internal/linkage"
	"alphalink/internal/report"
	"alphalink/internal/seed"

	"github.com/spf13/cobra"
)

var (
	runMode    string
	runCost    string
	runMetric  string
	runLinkage string
	runInput   string
	runInput1  string
	runK       int
	runOutput  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Enumerate dendrograms for one dataset and score them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeRun(runSpec{
			mode:    runMode,
			cost:    runCost,
			metric:  runMetric,
			linkage: runLinkage,
			input:   runInput,
			input1:  runInput1,
			k:       runK,
			output:  runOutput,
		})
	},
}

func init() {
	runCmd.Flags().StringVar(&runMode, "mode", "sc", "interpolation mode: sc, sa, ac, or d0d1")
	runCmd.Flags().StringVar(&runCost, "cost", "majority", "evaluator: majority or hamming")
	runCmd.Flags().StringVar(&runMetric, "metric", "euclidean", "seeding metric for feature inputs: euclidean or cosine (for mode d0d1, applied to both --input and --input1)")
	runCmd.Flags().StringVar(&runLinkage, "linkage", "single", "shared linkage rule for mode d0d1: single or complete")
	runCmd.Flags().StringVar(&runInput, "input", "", "path to labeled feature CSV (required)")
	runCmd.Flags().StringVar(&runInput1, "input1", "", "path to the second labeled feature CSV (required for mode d0d1)")
	runCmd.Flags().IntVar(&runK, "k", 2, "number of clusters to score each dendrogram at")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output CSV path (default: stdout)")
	_ = runCmd.MarkFlagRequired("input")
}

// runSpec is the resolved, validated shape of one `alphalink run` invocation
// or one batchconfig.RunSpec, so both entry points share execution logic.
type runSpec struct {
	mode, cost, metric, linkage string
	input, input1               string
	k                            int
	output                      string
}

func executeRun(spec runSpec) error {
	records, err := runRecords(spec)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	out := os.Stdout
	if spec.output != "" {
		f, err := os.Create(spec.output)
		if err != nil {
			return fmt.Errorf("run: create %s: %w", spec.output, err)
		}
		defer f.Close()
		out = f
	}
	if err := report.Write(out, records); err != nil {
		return err
	}

	runID := report.NewRun()
	if len(records) > 0 {
		runID = records[0].RunID
	}
	if log != nil {
		log.Info("run complete", "run_id", runID.String(), "intervals", len(records))
	}
	fmt.Fprintln(os.Stderr, report.Summary(runID, records))
	return nil
}

func evaluatorFor(cost string) (func(*linkage.Node, int, []int) float64, error) {
	switch cost {
	case "majority":
		return evaluate.MajorityCost, nil
	case "hamming":
		return evaluate.HammingCost, nil
	default:
		return nil, fmt.Errorf("run: unknown cost %q, want majority or hamming", cost)
	}
}

// buildEnumerateConfig loads the CSV input(s) named by spec and returns the
// ground-truth labels to score against plus a ready-to-run enumerate.Config.
func buildEnumerateConfig(spec runSpec) ([]int, enumerate.Config, error) {
	primary, err := dataset.Load(spec.input)
	if err != nil {
		return nil, enumerate.Config{}, err
	}

	if spec.mode == "d0d1" {
		kind, err := parseLinkageKind(spec.linkage)
		if err != nil {
			return nil, enumerate.Config{}, err
		}
		if spec.input1 == "" {
			return nil, enumerate.Config{}, fmt.Errorf("run: --input1 is required for mode d0d1")
		}
		secondary, err := dataset.Load(spec.input1)
		if err != nil {
			return nil, enumerate.Config{}, err
		}
		if secondary.N() != primary.N() {
			return nil, enumerate.Config{}, fmt.Errorf("run: --input and --input1 must have the same number of points, got %d and %d", primary.N(), secondary.N())
		}

		metric := enumerateMetric(spec.metric)
		d0 := enumerateBuildDistances(primary, metric)
		d1 := enumerateBuildDistances(secondary, metric)
		return primary.Labels, enumerate.NewDistanceConfig(primary.N(), kind, d0, d1), nil
	}

	mode, err := parseMode(spec.mode)
	if err != nil {
		return nil, enumerate.Config{}, err
	}
	source := enumerate.DistanceSource{Features: primary.Features, Metric: enumerateMetric(spec.metric)}
	cfg, err := enumerate.NewLinkageConfig(primary.N(), mode, source)
	if err != nil {
		return nil, enumerate.Config{}, err
	}
	return primary.Labels, cfg, nil
}

func parseMode(s string) (enumerate.Mode, error) {
	switch s {
	case "sc":
		return enumerate.ModeSC, nil
	case "sa":
		return enumerate.ModeSA, nil
	case "ac":
		return enumerate.ModeAC, nil
	default:
		return 0, fmt.Errorf("run: unknown mode %q, want sc, sa, ac, or d0d1", s)
	}
}

func parseLinkageKind(s string) (linkage.Kind, error) {
	switch s {
	case "single":
		return linkage.Single, nil
	case "complete":
		return linkage.Complete, nil
	default:
		return 0, fmt.Errorf("run: unknown --linkage %q for mode d0d1, want single or complete", s)
	}
}

func enumerateMetric(s string) enumerate.Metric {
	if s == "cosine" {
		return enumerate.MetricCosine
	}
	return enumerate.MetricEuclidean
}

func enumerateBuildDistances(ds *dataset.Dataset, metric enumerate.Metric) []float64 {
	if metric == enumerate.MetricCosine {
		return seed.CosineDists(ds.Features)
	}
	return seed.EuclideanDists(ds.Features)
}
