package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOrdersByAlphaMin(t *testing.T) {
	records := []RunRecord{
		{AlphaMin: 0.5, AlphaMax: 1.0, Cost: 0.1},
		{AlphaMin: 0.0, AlphaMax: 0.5, Cost: 0.2},
	}
	var buf strings.Builder
	require.NoError(t, Write(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0,0.5,0.2"))
	assert.True(t, strings.HasPrefix(lines[1], "0.5,1,0.1"))
}

func TestAggregateAveragesOverlappingIntervals(t *testing.T) {
	runA := []RunRecord{{AlphaMin: 0, AlphaMax: 1, Cost: 0.2}}
	runB := []RunRecord{{AlphaMin: 0, AlphaMax: 0.5, Cost: 0.4}, {AlphaMin: 0.5, AlphaMax: 1, Cost: 0.6}}

	points := Aggregate(runA, runB)
	require.Len(t, points, 2)
	assert.InDelta(t, 0.3, points[0].MeanCost, 1e-9) // (0.2+0.4)/2
	assert.InDelta(t, 0.4, points[1].MeanCost, 1e-9) // (0.2+0.6)/2
}

func TestAggregateEmptyInputReturnsNil(t *testing.T) {
	assert.Nil(t, Aggregate())
}

func TestSummaryReportsBestCost(t *testing.T) {
	id := uuid.New()
	records := []RunRecord{{AlphaMin: 0, AlphaMax: 0.5, Cost: 0.3}, {AlphaMin: 0.5, AlphaMax: 1, Cost: 0.1}}
	s := Summary(id, records)
	assert.Contains(t, s, id.String())
	assert.Contains(t, s, "0.1")
}

func TestSummaryHandlesEmptyRecords(t *testing.T) {
	s := Summary(uuid.New(), nil)
	assert.Contains(t, s, "no dendrograms")
}
