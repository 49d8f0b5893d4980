package synth

import (
	"encoding/csv"
	"io"
	"strconv"

	"skylens/models"
)

// WriteCSV renders the bundle as the demo's downloadable CSV. Output is
// byte-stable for a given bundle: fixed column order, fixed decimal places,
// empty cell for absent values.
func WriteCSV(w io.Writer, b *models.ResultBundle) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+len(b.Variables))
	header = append(header, "date")
	for _, v := range b.Variables {
		header = append(header, string(v))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := range b.Series {
		p := &b.Series[i]
		row[0] = p.Date.Format("2006-01-02")
		for j, v := range b.Variables {
			row[j+1] = formatValue(p.Value(v), v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(val *float64, v models.AnalysisVariable) string {
	if val == nil {
		return ""
	}
	decimals := 2
	if v == models.VariableNDVI {
		decimals = 3
	}
	return strconv.FormatFloat(*val, 'f', decimals, 64)
}

// ChartPoint is one plotted sample; the label matches the demo chart's date
// axis format.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries shapes the bundle for the chart layer: per variable, labelled
// points with values passed through unmodified.
func ChartSeries(b *models.ResultBundle) map[models.AnalysisVariable][]ChartPoint {
	out := make(map[models.AnalysisVariable][]ChartPoint, len(b.Variables))
	for _, v := range b.Variables {
		points := make([]ChartPoint, 0, len(b.Series))
		for i := range b.Series {
			p := &b.Series[i]
			if val := p.Value(v); val != nil {
				points = append(points, ChartPoint{
					Label: p.Date.Format("Jan 2, 06"),
					Value: *val,
				})
			}
		}
		out[v] = points
	}
	return out
}
