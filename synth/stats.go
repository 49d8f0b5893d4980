package synth

import (
	"sort"

	"github.com/montanaflynn/stats"

	"skylens/models"
)

// Aggregate reduces the series to per-variable summary statistics, skipping
// nil entries. Variables with no observations get no entry at all.
func Aggregate(series []models.ObservationPoint, variables []models.AnalysisVariable) map[models.AnalysisVariable]*models.SeriesStatistics {
	out := make(map[models.AnalysisVariable]*models.SeriesStatistics, len(variables))
	for _, v := range variables {
		values := make([]float64, 0, len(series))
		for i := range series {
			if val := series[i].Value(v); val != nil {
				values = append(values, *val)
			}
		}
		if len(values) == 0 {
			continue
		}
		out[v] = summarize(values, v)
	}
	return out
}

func summarize(values []float64, v models.AnalysisVariable) *models.SeriesStatistics {
	mean, _ := stats.Mean(values)
	// Population std dev, not sample: the series is the whole population here.
	sd, _ := stats.StandardDeviationPopulation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	round := round2
	if v == models.VariableNDVI {
		round = round3
	}
	return &models.SeriesStatistics{
		Mean:   round(mean),
		StdDev: round(sd),
		Min:    min,
		Max:    max,
		Median: round(lowerMedian(values)),
		Count:  len(values),
	}
}

// lowerMedian returns sorted[n/2] rather than interpolating even-length
// series. Long-standing display behavior; keep unless product says otherwise.
func lowerMedian(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}
