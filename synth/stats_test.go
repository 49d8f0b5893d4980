package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylens/models"
)

func lstSeries(values ...float64) []models.ObservationPoint {
	out := make([]models.ObservationPoint, len(values))
	for i := range values {
		v := values[i]
		out[i].LSTDegC = &v
	}
	return out
}

func TestAggregateKnownSeries(t *testing.T) {
	series := lstSeries(4, 1, 3, 2)
	got := Aggregate(series, []models.AnalysisVariable{models.VariableLST})
	require.Contains(t, got, models.VariableLST)

	s := got[models.VariableLST]
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	// Population std dev: sqrt(1.25) rounded to 2 decimals.
	assert.InDelta(t, 1.12, s.StdDev, 1e-9)
	assert.InDelta(t, 1, s.Min, 1e-9)
	assert.InDelta(t, 4, s.Max, 1e-9)
	// Lower-of-two median for even counts: sorted[2] of {1,2,3,4}.
	assert.InDelta(t, 3, s.Median, 1e-9)
	assert.Equal(t, 4, s.Count)
}

func TestAggregateOddMedian(t *testing.T) {
	got := Aggregate(lstSeries(9, 1, 5), []models.AnalysisVariable{models.VariableLST})
	assert.InDelta(t, 5, got[models.VariableLST].Median, 1e-9)
}

func TestAggregateSkipsNilValues(t *testing.T) {
	series := lstSeries(10, 20)
	series = append(series, models.ObservationPoint{}) // no LST value
	got := Aggregate(series, []models.AnalysisVariable{models.VariableLST})
	assert.Equal(t, 2, got[models.VariableLST].Count)
	assert.InDelta(t, 15, got[models.VariableLST].Mean, 1e-9)
}

func TestAggregateOmitsEmptyVariables(t *testing.T) {
	series := lstSeries(10, 20)
	got := Aggregate(series, []models.AnalysisVariable{models.VariableLST, models.VariableNDVI})
	assert.Contains(t, got, models.VariableLST)
	assert.NotContains(t, got, models.VariableNDVI)

	// An all-empty series never divides by zero either.
	got = Aggregate(nil, []models.AnalysisVariable{models.VariableNDVI})
	assert.Empty(t, got)
}

func TestAggregateInvariants(t *testing.T) {
	g := New(77)
	values := make([]float64, 40)
	for i := range values {
		values[i] = round2(g.uniform(-20, 40))
	}
	s := Aggregate(lstSeries(values...), []models.AnalysisVariable{models.VariableLST})[models.VariableLST]

	assert.LessOrEqual(t, s.Min, s.Mean)
	assert.LessOrEqual(t, s.Mean, s.Max)
	assert.GreaterOrEqual(t, s.StdDev, 0.0)
	assert.GreaterOrEqual(t, s.Median, s.Min)
	assert.LessOrEqual(t, s.Median, s.Max)
	assert.False(t, math.IsNaN(s.StdDev))
}
