package batchconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
runs:
  - name: iris-sc
    mode: sc
    cost: majority
    metric: euclidean
    input: iris.csv
    k: 3
    output: iris-sc.csv
`)
	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Runs, 1)
	assert.Equal(t, ModeSC, m.Runs[0].Mode)
	assert.Equal(t, 3, m.Runs[0].K)
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	path := writeManifest(t, "runs: []\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeManifest(t, `
runs:
  - name: bad
    mode: nope
    cost: majority
    metric: euclidean
    input: x.csv
    k: 2
    output: out.csv
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDistanceModeRequiresInput1(t *testing.T) {
	path := writeManifest(t, `
runs:
  - name: dist
    mode: d0d1
    cost: hamming
    input: d0.csv
    k: 2
    output: out.csv
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDistanceModeAcceptsExplicitLinkage(t *testing.T) {
	path := writeManifest(t, `
runs:
  - name: dist
    mode: d0d1
    cost: hamming
    linkage: complete
    input: d0.csv
    input1: d1.csv
    k: 2
    output: out.csv
`)
	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Runs, 1)
	assert.Equal(t, "complete", m.Runs[0].Linkage)
}

func TestLoadDistanceModeRejectsUnknownLinkage(t *testing.T) {
	path := writeManifest(t, `
runs:
  - name: dist
    mode: d0d1
    cost: hamming
    linkage: ward
    input: d0.csv
    input1: d1.csv
    k: 2
    output: out.csv
`)
	_, err := Load(path)
	assert.Error(t, err)
}
