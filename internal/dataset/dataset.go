// Package dataset ingests labeled feature-vector CSV files: one example per
// line, an integer ground-truth label followed by float64 feature
// components, with '#' comment lines.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Dataset is a loaded set of labeled feature vectors, all with the same
// dimension.
type Dataset struct {
	Labels   []int
	Features [][]float64
}

// N returns the number of examples.
func (d *Dataset) N() int { return len(d.Labels) }

// Dimension returns the feature dimension, or 0 for an empty dataset.
func (d *Dataset) Dimension() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

// Load reads a dataset from the file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a dataset from r. name is used only for diagnostics.
func Parse(r io.Reader, name string) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	ds := &Dataset{}
	dim := -1
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields, err := csv.NewReader(strings.NewReader(text)).Read()
		if err != nil {
			return nil, fmt.Errorf("dataset: %s:%d: %w", name, line, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("dataset: %s:%d: need a label and at least one feature, got %d fields", name, line, len(fields))
		}

		label, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("dataset: %s:%d: invalid integer label %q: %w", name, line, fields[0], err)
		}

		features := make([]float64, len(fields)-1)
		for i, raw := range fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s:%d: invalid feature %q: %w", name, line, raw, err)
			}
			features[i] = v
		}

		if dim == -1 {
			dim = len(features)
		} else if len(features) != dim {
			return nil, fmt.Errorf("dataset: %s:%d: expected %d features, got %d", name, line, dim, len(features))
		}

		ds.Labels = append(ds.Labels, label)
		ds.Features = append(ds.Features, features)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", name, err)
	}
	if len(ds.Labels) == 0 {
		return nil, fmt.Errorf("dataset: %s: empty dataset", name)
	}
	return ds, nil
}

// FilterLabels returns a new Dataset containing only the rows whose label
// is in keep. Returns an error if the result would be empty.
func (d *Dataset) FilterLabels(keep map[int]bool) (*Dataset, error) {
	out := &Dataset{}
	for i, l := range d.Labels {
		if keep[l] {
			out.Labels = append(out.Labels, l)
			out.Features = append(out.Features, d.Features[i])
		}
	}
	if len(out.Labels) == 0 {
		return nil, fmt.Errorf("dataset: label subset is empty")
	}
	return out, nil
}
