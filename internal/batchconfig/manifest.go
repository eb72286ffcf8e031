// Package batchconfig parses the YAML run manifests consumed by
// `alphalink batch` (gopkg.in/yaml.v3).
package batchconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode mirrors enumerate.Mode in string form for YAML decoding. Kept
// independent of internal/enumerate so this package has no dependency on
// the clustering core.
type Mode string

const (
	ModeSC       Mode = "sc"
	ModeSA       Mode = "sa"
	ModeAC       Mode = "ac"
	ModeDistance Mode = "d0d1"
)

// Cost selects which evaluator a run uses.
type Cost string

const (
	CostMajority Cost = "majority"
	CostHamming  Cost = "hamming"
)

// Metric selects the seeding metric for feature-matrix inputs.
type Metric string

const (
	MetricEuclidean Metric = "euclidean"
	MetricCosine    Metric = "cosine"
)

// RunSpec describes a single clustering run within a batch manifest.
type RunSpec struct {
	Name    string `yaml:"name"`
	Mode    Mode   `yaml:"mode"`
	Cost    Cost   `yaml:"cost"`
	Metric  Metric `yaml:"metric"`
	Linkage string `yaml:"linkage,omitempty"` // shared linkage rule for mode d0d1: single or complete (default single)
	Input   string `yaml:"input"`             // feature matrix or d0 CSV path
	Input1  string `yaml:"input1,omitempty"`  // d1 CSV path, required for mode d0d1
	K       int    `yaml:"k"`
	Output  string `yaml:"output"`
	GroupID string `yaml:"group_id,omitempty"` // runs sharing a group_id are averaged together
}

// Manifest is a batch of runs, as consumed by `alphalink batch`.
type Manifest struct {
	Runs []RunSpec `yaml:"runs"`
}

// Load reads and validates a YAML batch manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batchconfig: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("batchconfig: parse %s: %w", path, err)
	}
	if len(m.Runs) == 0 {
		return nil, fmt.Errorf("batchconfig: %s declares no runs", path)
	}
	for i, r := range m.Runs {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("batchconfig: %s: run %d (%s): %w", path, i, r.Name, err)
		}
	}
	return &m, nil
}

func (r RunSpec) validate() error {
	switch r.Mode {
	case ModeSC, ModeSA, ModeAC, ModeDistance:
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	switch r.Cost {
	case CostMajority, CostHamming:
	default:
		return fmt.Errorf("unknown cost %q", r.Cost)
	}
	if r.Mode != ModeDistance {
		switch r.Metric {
		case MetricEuclidean, MetricCosine:
		default:
			return fmt.Errorf("unknown metric %q", r.Metric)
		}
	}
	if r.Input == "" {
		return fmt.Errorf("input is required")
	}
	if r.Mode == ModeDistance {
		if r.Input1 == "" {
			return fmt.Errorf("input1 is required for mode %q", ModeDistance)
		}
		switch r.Linkage {
		case "", "single", "complete":
		default:
			return fmt.Errorf("unknown linkage %q for mode %q, want single or complete", r.Linkage, ModeDistance)
		}
	}
	if r.K < 1 {
		return fmt.Errorf("k must be >= 1")
	}
	return nil
}
