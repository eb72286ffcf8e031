package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	input := "# comment\n0,1.0,2.0\n1,3.0,4.0\n\n1,5.0,6.0\n"
	ds, err := Parse(strings.NewReader(input), "test")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.N())
	assert.Equal(t, 2, ds.Dimension())
	assert.Equal(t, []int{0, 1, 1}, ds.Labels)
	assert.Equal(t, []float64{1.0, 2.0}, ds.Features[0])
}

func TestParseRejectsInconsistentDimension(t *testing.T) {
	input := "0,1.0,2.0\n1,3.0\n"
	_, err := Parse(strings.NewReader(input), "test")
	assert.Error(t, err)
}

func TestParseRejectsBadLabel(t *testing.T) {
	input := "not-a-number,1.0,2.0\n"
	_, err := Parse(strings.NewReader(input), "test")
	assert.Error(t, err)
}

func TestParseRejectsEmptyDataset(t *testing.T) {
	_, err := Parse(strings.NewReader("# only comments\n"), "test")
	assert.Error(t, err)
}

func TestFilterLabels(t *testing.T) {
	input := "0,1.0\n1,2.0\n2,3.0\n0,4.0\n"
	ds, err := Parse(strings.NewReader(input), "test")
	require.NoError(t, err)

	sub, err := ds.FilterLabels(map[int]bool{0: true, 2: true})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0}, sub.Labels)
}

func TestFilterLabelsEmptyResultErrors(t *testing.T) {
	input := "0,1.0\n1,2.0\n"
	ds, err := Parse(strings.NewReader(input), "test")
	require.NoError(t, err)

	_, err = ds.FilterLabels(map[int]bool{9: true})
	assert.Error(t, err)
}
