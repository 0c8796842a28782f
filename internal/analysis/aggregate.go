package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cellbench/internal/model"
)

// Overview is the bank-level summary: the original dashboard's top metric
// row plus the status distribution.
type Overview struct {
	CellCount      int
	AvgVoltage     float64
	AvgTemperature float64
	TotalPower     float64
	AvgHealth      float64
	StatusCounts   map[model.Status]int
}

// AggregateHealth returns the arithmetic mean of health over all cells.
func AggregateHealth(cells []model.CellRecord) (float64, error) {
	if len(cells) == 0 {
		return 0, model.ErrEmptyStore
	}
	vals := make([]float64, 0, len(cells))
	for _, c := range cells {
		vals = append(vals, c.Health)
	}
	return stat.Mean(vals, nil), nil
}

// Aggregate computes the bank overview.
func Aggregate(cells []model.CellRecord) (Overview, error) {
	if len(cells) == 0 {
		return Overview{}, model.ErrEmptyStore
	}

	o := Overview{
		CellCount: len(cells),
		StatusCounts: map[model.Status]int{
			model.StatusGood:     0,
			model.StatusWarning:  0,
			model.StatusCritical: 0,
		},
	}
	voltages := make([]float64, 0, len(cells))
	temps := make([]float64, 0, len(cells))
	healths := make([]float64, 0, len(cells))
	for _, c := range cells {
		voltages = append(voltages, c.Voltage)
		temps = append(temps, c.Temperature)
		healths = append(healths, c.Health)
		o.TotalPower += c.Capacity
		o.StatusCounts[model.StatusOf(c.CellState)]++
	}
	o.AvgVoltage = stat.Mean(voltages, nil)
	o.AvgTemperature = stat.Mean(temps, nil)
	o.AvgHealth = stat.Mean(healths, nil)
	return o, nil
}

// FieldSummary holds descriptive statistics for one numeric column of the
// state table.
type FieldSummary struct {
	Field  string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes per-field descriptive statistics over the current
// cells, one row per numeric column.
func Summarize(cells []model.CellRecord) ([]FieldSummary, error) {
	if len(cells) == 0 {
		return nil, model.ErrEmptyStore
	}
	out := make([]FieldSummary, 0, len(numericFields))
	for _, f := range numericFields {
		vals := make([]float64, 0, len(cells))
		for _, c := range cells {
			vals = append(vals, f.get(c.CellState))
		}
		out = append(out, FieldSummary{
			Field:  f.name,
			Mean:   stat.Mean(vals, nil),
			StdDev: stat.StdDev(vals, nil),
			Min:    floats.Min(vals),
			Max:    floats.Max(vals),
		})
	}
	return out, nil
}
