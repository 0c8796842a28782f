package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"cellbench/internal/model"
)

type field struct {
	name string
	get  func(model.CellState) float64
}

// numericFields are the columns analyzed by Summarize and Correlation, in
// report order.
var numericFields = []field{
	{"voltage", func(c model.CellState) float64 { return c.Voltage }},
	{"current", func(c model.CellState) float64 { return c.Current }},
	{"temperature", func(c model.CellState) float64 { return c.Temperature }},
	{"capacity", func(c model.CellState) float64 { return c.Capacity }},
	{"health", func(c model.CellState) float64 { return c.Health }},
}

// CorrelationMatrix holds the pairwise Pearson correlations between the
// numeric history fields. Values[i][j] correlates Fields[i] with Fields[j].
type CorrelationMatrix struct {
	Fields []string
	Values [][]float64
}

// Correlation computes the Pearson correlation matrix over the full history
// log. It needs at least 2 records and non-zero variance in every field.
func Correlation(records []model.HistoryRecord) (*CorrelationMatrix, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 history records, have %d",
			model.ErrInsufficientData, len(records))
	}

	series := make([][]float64, len(numericFields))
	for i, f := range numericFields {
		vals := make([]float64, 0, len(records))
		for _, r := range records {
			vals = append(vals, f.get(r.CellState))
		}
		if stat.Variance(vals, nil) == 0 {
			return nil, fmt.Errorf("%w: field %q has zero variance",
				model.ErrInsufficientData, f.name)
		}
		series[i] = vals
	}

	m := &CorrelationMatrix{
		Fields: make([]string, len(numericFields)),
		Values: make([][]float64, len(numericFields)),
	}
	for i, f := range numericFields {
		m.Fields[i] = f.name
		m.Values[i] = make([]float64, len(numericFields))
		for j := range numericFields {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			m.Values[i][j] = stat.Correlation(series[i], series[j], nil)
		}
	}
	return m, nil
}
